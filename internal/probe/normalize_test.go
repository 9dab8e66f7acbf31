package probe

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"a.com", "a.com"},
		{"http://b.com/", "b.com"},
		{"https://c.com", "c.com"},
		{"https://c.com/", "c.com"},
		{"d.com/", "d.com"},
		{"d.com//", "d.com/"},
		{"https://e.com/path/", "e.com/path"},
		{"HTTP://f.com", "HTTP://f.com"},
		{"ftp://g.com/", "ftp://g.com"},
		{"http://https://h.com", "https://h.com"},
		{"", ""},
		{"/", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestNormalize_IdempotentOnNormalized(t *testing.T) {
	for _, in := range []string{"a.com", "sub.b.co.id", "c.com/path", "HTTP://x.com"} {
		once := Normalize(in)
		if once != in {
			t.Fatalf("already-normalized %q changed to %q", in, once)
		}
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent: %q -> %q", once, twice)
		}
	}
}
