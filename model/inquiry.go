package model

import (
	"strings"
)

// ServiceSelection is the pricing tier/package the customer picked. The
// Constraints map is a legacy payload-embedded fallback consulted only when
// no DB-backed constraint source matches.
type ServiceSelection struct {
	ID          string         `json:"id,omitempty"`
	Level       string         `json:"level,omitempty"`
	SectionID   string         `json:"sectionId,omitempty"`
	Title       string         `json:"title,omitempty"`
	Price       string         `json:"price,omitempty"`
	Constraints map[string]any `json:"constraints,omitempty"`
}

func (s ServiceSelection) IsZero() bool {
	return s.ID == "" && s.Level == "" && s.SectionID == "" && s.Title == "" && s.Price == "" && len(s.Constraints) == 0
}

type DesiredMenuItem struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	TraySize  string `json:"tray_size,omitempty"`
	TrayPrice string `json:"tray_price,omitempty"`
}

// Inquiry is one customer catering request, normalized from the raw payload.
// Immutable after creation except for the EmailSent flag.
type Inquiry struct {
	ID                int64
	ExternalID        string
	FullName          string
	Email             string
	Phone             string
	EventType         string
	EventDate         string
	GuestCount        int
	GuestCountSet     bool
	GuestCountInvalid bool
	Budget            string
	ServiceInterest   string
	Message           string
	ServiceSelection  ServiceSelection
	DesiredMenuItems  []DesiredMenuItem
	EmailSent         bool
}

// InquiryFromPayload normalizes the decoded JSON body into an Inquiry:
// strings trimmed, email lowercased, phone and budget rewritten into their
// canonical display forms when parseable (left as-is otherwise so validation
// can name the problem), guest count coerced with an invalid marker.
func InquiryFromPayload(raw map[string]any) *Inquiry {
	inq := &Inquiry{
		FullName:        trimString(raw["full_name"]),
		Email:           NormalizeEmail(trimString(raw["email"])),
		EventType:       trimString(raw["event_type"]),
		EventDate:       trimString(raw["event_date"]),
		ServiceInterest: trimString(raw["service_interest"]),
		Message:         trimString(raw["message"]),
	}

	phone := trimString(raw["phone"])
	if normalized, ok := NormalizePhone(phone); ok {
		phone = normalized
	}
	inq.Phone = phone

	budget := trimString(raw["budget"])
	if normalized, ok := NormalizeBudget(budget); ok {
		budget = normalized
	}
	inq.Budget = budget

	inq.GuestCount, inq.GuestCountSet, inq.GuestCountInvalid = coerceGuestCount(raw["guest_count"])
	inq.ServiceSelection = serviceSelectionFromAny(raw["service_selection"])
	inq.DesiredMenuItems = DesiredItemsFromAny(raw["desired_menu_items"])

	return inq
}

func trimString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func coerceGuestCount(value any) (count int, set bool, invalid bool) {
	switch v := value.(type) {
	case nil:
		return 0, false, false
	case float64:
		if v != float64(int(v)) {
			return 0, true, true
		}
		return int(v), true, false
	case int:
		return v, true, false
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false, false
		}
		n := 0
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return 0, true, true
			}
			n = n*10 + int(r-'0')
		}
		return n, true, false
	default:
		return 0, true, true
	}
}

func serviceSelectionFromAny(value any) ServiceSelection {
	m, ok := value.(map[string]any)
	if !ok {
		return ServiceSelection{}
	}

	sel := ServiceSelection{
		ID:        trimString(m["id"]),
		Level:     trimString(m["level"]),
		SectionID: trimString(m["sectionId"]),
		Title:     trimString(m["title"]),
		Price:     trimString(m["price"]),
	}
	if constraints, ok := m["constraints"].(map[string]any); ok {
		sel.Constraints = constraints
	}
	return sel
}

// DesiredItemsFromAny accepts both the structured item shape and bare item
// name strings, which older storefront builds still send.
func DesiredItemsFromAny(value any) []DesiredMenuItem {
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	items := make([]DesiredMenuItem, 0, len(list))
	for _, entry := range list {
		switch v := entry.(type) {
		case map[string]any:
			name := trimString(v["name"])
			if name == "" {
				continue
			}
			items = append(items, DesiredMenuItem{
				Name:      name,
				Category:  trimString(v["category"]),
				TraySize:  trimString(v["tray_size"]),
				TrayPrice: trimString(v["tray_price"]),
			})
		case string:
			if name := strings.TrimSpace(v); name != "" {
				items = append(items, DesiredMenuItem{Name: name})
			}
		}
	}
	return items
}
