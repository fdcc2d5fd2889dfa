package utils

import (
	"math/rand"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"
var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

func GenerateRandomContactNumber() string {
	number := "1"
	for i := 0; i < 10; i++ {
		number += string(digits[rand.Intn(len(digits))])
	}
	return number
}

// 按名称的拼音生成社交链接，方便肉眼核对种子数据
func GenerateSocialLinks(name string) domain.SocialLinks {
	slug := PinyinSlug(name)
	return domain.SocialLinks{
		Instagram: "https://instagram.com/" + slug,
		Facebook:  "https://facebook.com/" + slug,
		Website:   "https://" + slug + ".example.com",
	}
}

func datePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}

// 生成已经结束的展示窗口
func GenerateEndedWindow(slot *domain.FeaturedSlot) {
	start := time.Now().AddDate(0, 0, -(rand.Intn(30) + 14))
	slot.StartDate = datePtr(start)
	slot.EndDate = datePtr(start.AddDate(0, 0, rand.Intn(7)+3))
}

// 生成覆盖今天的展示窗口
func GenerateCurrentWindow(slot *domain.FeaturedSlot) {
	start := time.Now().AddDate(0, 0, -rand.Intn(3))
	slot.StartDate = datePtr(start)
	slot.EndDate = datePtr(start.AddDate(0, 0, rand.Intn(7)+3))
}

// 生成尚未开始的展示窗口
func GenerateUpcomingWindow(slot *domain.FeaturedSlot) {
	start := time.Now().AddDate(0, 0, rand.Intn(14)+1)
	slot.StartDate = datePtr(start)
	slot.EndDate = datePtr(start.AddDate(0, 0, rand.Intn(7)+3))
}

// 随机生成一条推荐档期
func GenerateRandomFeaturedSlot() *domain.FeaturedSlot {
	name := GenerateRandomChineseName()
	slot := &domain.FeaturedSlot{
		Name:          name,
		Description:   "推荐简介" + GenerateRandomID(20, 10),
		ImageRef:      "featured/" + GenerateRandomID(8, 4) + ".jpg",
		ContactNumber: GenerateRandomContactNumber(),
		SocialLinks:   GenerateSocialLinks(name),
	}

	// 四种窗口状态之一是缺少日期的不可排期档期
	switch rand.Intn(4) {
	case 0:
		GenerateEndedWindow(slot)
	case 1:
		GenerateCurrentWindow(slot)
	case 2:
		GenerateUpcomingWindow(slot)
	case 3:
		// 留空日期，模拟操作员还没定档的草稿
	}

	return slot
}
