package featured

import (
	"strings"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
	"github.com/zhanxing-dev/featured-manager/backend/internal/utils"
)

// DescriptiveFields 按名称回填时允许复用的字段子集。
// 刻意不包含 ID、展示窗口和上线状态：复用名称只复用描述性内容，
// 绝不能连带复制档期窗口或上线状态。
type DescriptiveFields struct {
	Description   string             `json:"description"`
	ImageRef      string             `json:"imageRef"`
	ContactNumber string             `json:"contactNumber"`
	SocialLinks   domain.SocialLinks `json:"socialLinks"`
}

// NameIndex 基于现有档期名称的只读查询：去重名称列表、输入联想、按名称回填
type NameIndex struct {
	repo Repository
}

func NewNameIndex(repo Repository) *NameIndex {
	return &NameIndex{repo: repo}
}

// DistinctNames 返回所有档期的去重名称。去重是大小写敏感的，
// 大小写不敏感的比较只用于匹配，不用于折叠展示形式。
func (n *NameIndex) DistinctNames() ([]string, error) {
	slots, err := n.repo.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, slot := range slots {
		if seen[slot.Name] {
			continue
		}
		seen[slot.Name] = true
		names = append(names, slot.Name)
	}

	return names, nil
}

// Suggest 按大小写不敏感的子串包含过滤去重名称，并排除与输入完全一致的名称，
// 避免把操作员已经输入的名称再提示一遍。中文名称额外按拼音匹配，
// 操作员输入拉丁字母也能检索到中文名称。
func (n *NameIndex) Suggest(partial string) ([]string, error) {
	names, err := n.DistinctNames()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(partial)

	matched := []string{}
	for _, name := range names {
		if strings.EqualFold(name, partial) {
			continue
		}
		if strings.Contains(strings.ToLower(name), q) || strings.Contains(utils.PinyinSlug(name), q) {
			matched = append(matched, name)
		}
	}

	return matched, nil
}

// Prefill 找到名称大小写不敏感匹配 exactName 的档期并返回其描述性字段。
// 多个档期匹配时取创建时间最近的一个。没有匹配时返回 ErrNotFound。
func (n *NameIndex) Prefill(exactName string) (*DescriptiveFields, error) {
	slots, err := n.repo.GetAll()
	if err != nil {
		return nil, err
	}

	var latest *domain.FeaturedSlot
	for _, slot := range slots {
		if !strings.EqualFold(slot.Name, exactName) {
			continue
		}
		// 创建时间相同时（比如同一批插入）用 ID 区分新旧
		if latest == nil || slot.CreatedAt.After(latest.CreatedAt) ||
			(slot.CreatedAt.Equal(latest.CreatedAt) && slot.ID > latest.ID) {
			latest = slot
		}
	}

	if latest == nil {
		return nil, ErrNotFound
	}

	return &DescriptiveFields{
		Description:   latest.Description,
		ImageRef:      latest.ImageRef,
		ContactNumber: latest.ContactNumber,
		SocialLinks:   latest.SocialLinks,
	}, nil
}
