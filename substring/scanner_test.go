package substring

import "testing"

func TestFirstIndexIn(t *testing.T) {
	cases := []struct {
		pattern, haystack string
		want              int
	}{
		{"spain", "spain", 0},
		{"pain", "spain", 1},
		{"xyz", "spain", -1},
		{"", "anything", 0},
		{"germany", "", -1},
		{"ab", "aab", 1},
		{"aus", "austria", 0},
		{"aus", "mauritius", -1},
	}
	for _, tc := range cases {
		got := FirstIndexIn(tc.pattern, tc.haystack)
		if got != tc.want {
			t.Errorf("FirstIndexIn(%q, %q) = %d, want %d", tc.pattern, tc.haystack, got, tc.want)
		}
	}
}

func TestCompiledReuse(t *testing.T) {
	c := Compile("land")
	haystacks := []string{"ireland", "iceland", "poland", "spain"}
	want := []int{3, 3, 2, -1}
	for i, h := range haystacks {
		if got := c.FirstIndexIn(h); got != want[i] {
			t.Errorf("FirstIndexIn(%q) = %d, want %d", h, got, want[i])
		}
	}
}

func TestFirstIndexInLeftmost(t *testing.T) {
	if got := FirstIndexIn("an", "banana"); got != 1 {
		t.Errorf("expected leftmost match at 1, got %d", got)
	}
}
