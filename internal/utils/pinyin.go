package utils

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// PinyinSlug 把名称中的汉字逐字转为小写拼音后拼接，非汉字字符原样保留并转小写。
// 用于让操作员输入拼音检索中文名称。
func PinyinSlug(name string) string {
	var b strings.Builder
	for _, r := range name {
		converted := pinyin.LazyConvert(string(r), nil)
		if len(converted) > 0 {
			b.WriteString(converted[0])
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
