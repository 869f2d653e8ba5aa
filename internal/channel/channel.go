package channel

import "callcenter-gin/internal/models"

// ===========================================================================
// Contact Channel (Kênh liên hệ khách hàng)
// Bảng capability: mỗi kênh khai báo nó hỗ trợ gọi/nhắn tin và cách
// resolve target từ thông tin khách hàng
// Duyệt bảng thay vì branch theo từng kênh
// ===========================================================================

// Channel một kênh liên hệ với khách hàng
type Channel interface {
	// Type trả về loại kênh (mobile/whatsapp/facebook/linkedin/other)
	Type() string

	// SupportsCall kênh có hỗ trợ gọi thoại không
	SupportsCall() bool

	// SupportsMessage kênh có hỗ trợ nhắn tin không
	SupportsMessage() bool

	// Resolve lấy target liên hệ từ khách hàng (số điện thoại, URL profile)
	// Trả về ok=false nếu khách không có thông tin cho kênh này
	Resolve(customer *models.Customer) (target string, ok bool)
}

// ===========================================================================
// Các kênh tĩnh
// ===========================================================================

// MobileChannel gọi điện và SMS qua số di động
type MobileChannel struct{}

func NewMobileChannel() *MobileChannel { return &MobileChannel{} }

func (c *MobileChannel) Type() string          { return "mobile" }
func (c *MobileChannel) SupportsCall() bool    { return true }
func (c *MobileChannel) SupportsMessage() bool { return true }

func (c *MobileChannel) Resolve(customer *models.Customer) (string, bool) {
	if customer.Mobile == nil || *customer.Mobile == "" {
		return "", false
	}
	return *customer.Mobile, true
}

// WhatsAppChannel gọi và nhắn tin WhatsApp (dùng chung số di động)
type WhatsAppChannel struct{}

func NewWhatsAppChannel() *WhatsAppChannel { return &WhatsAppChannel{} }

func (c *WhatsAppChannel) Type() string          { return "whatsapp" }
func (c *WhatsAppChannel) SupportsCall() bool    { return true }
func (c *WhatsAppChannel) SupportsMessage() bool { return true }

func (c *WhatsAppChannel) Resolve(customer *models.Customer) (string, bool) {
	if customer.Mobile == nil || *customer.Mobile == "" {
		return "", false
	}
	return *customer.Mobile, true
}

// FacebookChannel nhắn tin qua Facebook profile
type FacebookChannel struct{}

func NewFacebookChannel() *FacebookChannel { return &FacebookChannel{} }

func (c *FacebookChannel) Type() string          { return "facebook" }
func (c *FacebookChannel) SupportsCall() bool    { return false }
func (c *FacebookChannel) SupportsMessage() bool { return true }

func (c *FacebookChannel) Resolve(customer *models.Customer) (string, bool) {
	if customer.Links.Facebook == "" {
		return "", false
	}
	return customer.Links.Facebook, true
}

// LinkedInChannel nhắn tin qua LinkedIn profile
type LinkedInChannel struct{}

func NewLinkedInChannel() *LinkedInChannel { return &LinkedInChannel{} }

func (c *LinkedInChannel) Type() string          { return "linkedin" }
func (c *LinkedInChannel) SupportsCall() bool    { return false }
func (c *LinkedInChannel) SupportsMessage() bool { return true }

func (c *LinkedInChannel) Resolve(customer *models.Customer) (string, bool) {
	if customer.Links.LinkedIn == "" {
		return "", false
	}
	return customer.Links.LinkedIn, true
}

// OtherChannel link liên hệ khác (website, Telegram, etc.)
type OtherChannel struct{}

func NewOtherChannel() *OtherChannel { return &OtherChannel{} }

func (c *OtherChannel) Type() string          { return "other" }
func (c *OtherChannel) SupportsCall() bool    { return false }
func (c *OtherChannel) SupportsMessage() bool { return true }

func (c *OtherChannel) Resolve(customer *models.Customer) (string, bool) {
	if customer.Links.Other == "" {
		return "", false
	}
	return customer.Links.Other, true
}

// ===========================================================================
// Mapping từ interaction channel sang contact channel
// ===========================================================================

// ContactChannelFor trả về tên contact channel cho một interaction channel
// call và sms đi qua số di động, whatsapp qua kênh WhatsApp
func ContactChannelFor(ic models.InteractionChannel) string {
	switch ic {
	case models.ChannelWhatsApp:
		return "whatsapp"
	default:
		return "mobile"
	}
}
