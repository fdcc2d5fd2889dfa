package utils

import "testing"

func TestPinyinSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"王敏", "wangmin"},
		{"李芳", "lifang"},
		{"Jane Doe", "jane doe"},
		{"张Wei", "zhangwei"},
	}

	for _, c := range cases {
		if got := PinyinSlug(c.name); got != c.want {
			t.Errorf("PinyinSlug(%q) = %q，期望 %q", c.name, got, c.want)
		}
	}
}
