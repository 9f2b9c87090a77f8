package value

import "testing"

func TestBanners(t *testing.T) {
	cases := []struct {
		err  *ComputeError
		want string
	}{
		{ParseError("bad"), "!PARSE ERROR!"},
		{TypeError(), "!TYPE ERROR!"},
		{UnfindableReference("A1"), "!REFERENCE ERROR!"},
		{Cycle(), "!CYCLIC REFERENCE!"},
		{UnknownFunction(), "!UNKNOWN FUNCTION!"},
	}
	for _, c := range cases {
		if got := c.err.Banner(); got != c.want {
			t.Errorf("Banner() = %q, want %q", got, c.want)
		}
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}
