package domain

import "time"

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Website   string `json:"website,omitempty"`
}

// FeaturedSlot 一条推荐档期记录：被推荐的占星师及其展示窗口
type FeaturedSlot struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	ImageRef      string      `json:"imageRef"`
	ContactNumber string      `json:"contactNumber"`
	SocialLinks   SocialLinks `json:"socialLinks"`
	StartDate     *time.Time  `json:"startDate"`
	EndDate       *time.Time  `json:"endDate"`
	IsLive        bool        `json:"isLive"`
	CreatedAt     time.Time   `json:"createdAt"`
	Version       int32       `json:"-"`
}

// Schedulable 开始和结束日期都存在时档期才可参与冲突检测和上线解析
func (s *FeaturedSlot) Schedulable() bool {
	return s.StartDate != nil && s.EndDate != nil
}
