package email

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/gomail.v2"

	"post-catering/model"
)

var titleCaser = cases.Title(language.English)

func formatServiceSelection(sel model.ServiceSelection) string {
	title := strings.TrimSpace(sel.Title)
	if title == "" {
		return ""
	}

	label := title
	if level := strings.TrimSpace(sel.Level); level != "" {
		label = fmt.Sprintf("%s: %s", titleCaser.String(level), title)
	}
	if price := strings.TrimSpace(sel.Price); price != "" {
		return fmt.Sprintf("%s (%s)", label, price)
	}
	return label
}

func formatHumanDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %d, %d", t.Weekday(), t.Month(), t.Day(), t.Year())
}

// formatEventDate renders an ISO event date as "Monday, June 15, 2026".
// Unparseable values pass through untouched so the owner still sees what
// the customer typed.
func formatEventDate(eventDate string) string {
	if eventDate == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, eventDate); err == nil {
			return formatHumanDate(parsed)
		}
	}
	return eventDate
}

func normalizeCategoryLabel(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		key = "other"
	}
	key = strings.ReplaceAll(key, " ", "_")

	switch key {
	case "entree", "entrees", "protein", "proteins":
		return "Entree/Protein"
	case "sides":
		return "Sides"
	case "salads":
		return "Salads"
	case "starter", "starters":
		return "Starters"
	case "passed":
		return "Passed Appetizers"
	case "appetizer", "appetizers":
		return "Appetizers"
	case "other":
		return "Other"
	}
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

type groupedItems struct {
	labels []string
	items  map[string][]model.DesiredMenuItem
}

func groupDesiredItems(items []model.DesiredMenuItem) groupedItems {
	grouped := groupedItems{items: map[string][]model.DesiredMenuItem{}}
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		label := normalizeCategoryLabel(item.Category)
		if _, seen := grouped.items[label]; !seen {
			grouped.labels = append(grouped.labels, label)
		}
		grouped.items[label] = append(grouped.items[label], item)
	}
	return grouped
}

func itemDetailSuffix(item model.DesiredMenuItem) string {
	var parts []string
	if item.TraySize != "" {
		parts = append(parts, "Tray: "+item.TraySize)
	}
	if item.TrayPrice != "" {
		parts = append(parts, "Price: "+item.TrayPrice)
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
}

func formatDesiredItemsByCategory(items []model.DesiredMenuItem) string {
	grouped := groupDesiredItems(items)
	if len(grouped.labels) == 0 {
		return "- None provided"
	}

	var lines []string
	for _, label := range grouped.labels {
		lines = append(lines, label+":")
		for _, item := range grouped.items[label] {
			lines = append(lines, "- "+item.Name+itemDetailSuffix(item))
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func formatDesiredItemsByCategoryHTML(items []model.DesiredMenuItem) string {
	grouped := groupDesiredItems(items)
	if len(grouped.labels) == 0 {
		return `<p style="margin:0;color:#475467;">None provided.</p>`
	}

	var blocks []string
	for _, label := range grouped.labels {
		var itemLines []string
		for _, item := range grouped.items[label] {
			var details []string
			if item.TraySize != "" {
				details = append(details, "Tray: "+html.EscapeString(item.TraySize))
			}
			if item.TrayPrice != "" {
				details = append(details, "Price: "+html.EscapeString(item.TrayPrice))
			}
			detailSuffix := ""
			if len(details) > 0 {
				detailSuffix = fmt.Sprintf(` <span style="color:#667085;">(%s)</span>`, strings.Join(details, ", "))
			}
			itemLines = append(itemLines, fmt.Sprintf(`<li style="margin:4px 0;">%s%s</li>`, html.EscapeString(item.Name), detailSuffix))
		}
		blocks = append(blocks, strings.Join([]string{
			`<div style="margin:0 0 14px 0;">`,
			fmt.Sprintf(`<div style="font-weight:700;color:#101828;margin:0 0 6px 0;">%s</div>`, html.EscapeString(label)),
			fmt.Sprintf(`<ul style="margin:0 0 0 18px;padding:0;color:#344054;">%s</ul>`, strings.Join(itemLines, "")),
			`</div>`,
		}, ""))
	}
	return strings.Join(blocks, "")
}

func guestCountDisplay(inq *model.Inquiry) string {
	if !inq.GuestCountSet || inq.GuestCount == 0 {
		return ""
	}
	return strconv.Itoa(inq.GuestCount)
}

// BuildOwnerNotification composes the notification mail sent to the catering
// owner inbox. Reply-To points back at the customer so the owner can answer
// directly.
func BuildOwnerNotification(inq *model.Inquiry, submittedAt time.Time, fromEmail, toEmail string) *gomail.Message {
	serviceSelectionText := formatServiceSelection(inq.ServiceSelection)
	desiredItemsText := formatDesiredItemsByCategory(inq.DesiredMenuItems)
	submittedDisplay := formatHumanDate(submittedAt.UTC())
	eventDateDisplay := formatEventDate(inq.EventDate)

	m := gomail.NewMessage()
	m.SetHeader("Subject", "New Catering Inquiry: "+inq.FullName)
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", toEmail)
	if inq.Email != "" {
		m.SetHeader("Reply-To", inq.Email)
	}

	plainText := strings.Join([]string{
		"POST 468 CATERING INQUIRY",
		"=========================",
		"",
		"Submitted Date: " + submittedDisplay,
		"",
		"CONTACT",
		"-------",
		"Full Name: " + inq.FullName,
		"Email: " + inq.Email,
		"Phone: " + inq.Phone,
		"",
		"EVENT",
		"-----",
		"Event Type: " + inq.EventType,
		"Event Date: " + eventDateDisplay,
		"Guest Count: " + guestCountDisplay(inq),
		"Budget: " + inq.Budget,
		"",
		"SERVICE",
		"-------",
		"Service Interest: " + inq.ServiceInterest,
		"Service Selection: " + serviceSelectionText,
		"",
		"DESIRED MENU ITEMS",
		"------------------",
		desiredItemsText,
		"",
		"MESSAGE",
		"-------",
		inq.Message,
	}, "\n")
	m.SetBody("text/plain", plainText)

	m.AddAlternative("text/html", strings.Join([]string{
		`<html><body style="margin:0;padding:0;background:#f8fafc;font-family:Arial,sans-serif;color:#101828;">`,
		`<div style="max-width:680px;margin:20px auto;padding:20px;background:#ffffff;border:1px solid #e4e7ec;border-radius:10px;">`,
		`<h2 style="margin:0 0 8px 0;color:#101828;">Post 468 Catering Inquiry</h2>`,
		fmt.Sprintf(`<p style="margin:0 0 18px 0;color:#475467;"><strong>Submitted Date:</strong> %s</p>`, html.EscapeString(submittedDisplay)),
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Contact</h3>`,
		fmt.Sprintf(`<p style="margin:0 0 12px 0;line-height:1.6;"><strong>Full Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Phone:</strong> %s</p>`,
			html.EscapeString(inq.FullName), html.EscapeString(inq.Email), html.EscapeString(inq.Phone)),
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Event</h3>`,
		fmt.Sprintf(`<p style="margin:0 0 12px 0;line-height:1.6;"><strong>Event Type:</strong> %s<br><strong>Event Date:</strong> %s<br><strong>Guest Count:</strong> %s<br><strong>Budget:</strong> %s</p>`,
			html.EscapeString(inq.EventType), html.EscapeString(eventDateDisplay), html.EscapeString(guestCountDisplay(inq)), html.EscapeString(inq.Budget)),
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Service</h3>`,
		fmt.Sprintf(`<p style="margin:0 0 12px 0;line-height:1.6;"><strong>Service Interest:</strong> %s<br><strong>Service Selection:</strong> %s</p>`,
			html.EscapeString(inq.ServiceInterest), html.EscapeString(serviceSelectionText)),
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Desired Menu Items</h3>`,
		formatDesiredItemsByCategoryHTML(inq.DesiredMenuItems),
		`<h3 style="margin:4px 0 8px 0;color:#1d2939;">Message</h3>`,
		fmt.Sprintf(`<p style="margin:0;line-height:1.6;color:#344054;">%s</p>`, html.EscapeString(inq.Message)),
		`</div></body></html>`,
	}, "\n"))

	return m
}

// BuildCustomerConfirmation composes the receipt mail sent back to the
// customer. The owner note at the bottom comes from the operator-editable
// email content config.
func BuildCustomerConfirmation(inq *model.Inquiry, submittedAt time.Time, fromEmail, replyToEmail, ownerNote, subject string) *gomail.Message {
	serviceSelectionText := formatServiceSelection(inq.ServiceSelection)
	if serviceSelectionText == "" {
		serviceSelectionText = "Not specified"
	}
	desiredItemsText := formatDesiredItemsByCategory(inq.DesiredMenuItems)
	submittedDisplay := formatHumanDate(submittedAt.UTC())
	eventDateDisplay := formatEventDate(inq.EventDate)

	m := gomail.NewMessage()
	m.SetHeader("Subject", subject)
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", inq.Email)
	if replyToEmail != "" {
		m.SetHeader("Reply-To", replyToEmail)
	}

	const eventTimeNote = "*Event time of day will be clarified later by our catering staff.*"
	eventDateWithNote := eventTimeNote
	if eventDateDisplay != "" {
		eventDateWithNote = eventDateDisplay + " (" + eventTimeNote + ")"
	}

	plainText := strings.Join([]string{
		"Hi " + inq.FullName + ",",
		"",
		"Thank you for contacting American Legion Post 468 Catering.",
		"",
		"YOUR SUBMISSION",
		"---------------",
		"- Submitted Date: " + submittedDisplay,
		"- Event Type: " + inq.EventType,
		"- Event Date: " + eventDateWithNote,
		"- Guest Count: " + guestCountDisplay(inq),
		"- Budget: " + inq.Budget,
		"- Service Interest: " + inq.ServiceInterest,
		"- Service Selection: " + serviceSelectionText,
		"",
		"DESIRED MENU ITEMS",
		"------------------",
		desiredItemsText,
		"",
		"MESSAGE",
		"-------",
		inq.Message,
		"",
		ownerNote,
	}, "\n")
	m.SetBody("text/plain", plainText)

	m.AddAlternative("text/html", strings.Join([]string{
		`<html><body style="margin:0;padding:0;background:#f8fafc;font-family:Arial,sans-serif;color:#101828;">`,
		`<div style="max-width:680px;margin:20px auto;padding:20px;background:#ffffff;border:1px solid #e4e7ec;border-radius:10px;">`,
		fmt.Sprintf(`<h2 style="margin:0 0 10px 0;color:#101828;">Hi %s,</h2>`, html.EscapeString(inq.FullName)),
		`<p style="margin:0 0 16px 0;color:#344054;line-height:1.6;">Thank you for contacting American Legion Post 468 Catering.</p>`,
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Your Submission</h3>`,
		`<ul style="margin:0 0 14px 18px;padding:0;color:#344054;line-height:1.6;">`,
		fmt.Sprintf(`<li><strong>Submitted Date:</strong> %s</li>`, html.EscapeString(submittedDisplay)),
		fmt.Sprintf(`<li><strong>Event Type:</strong> %s</li>`, html.EscapeString(inq.EventType)),
		fmt.Sprintf(`<li><strong>Event Date:</strong> %s <em style="color:#667085;">(Event time of day will be clarified later by our catering staff.)</em></li>`, html.EscapeString(eventDateDisplay)),
		fmt.Sprintf(`<li><strong>Guest Count:</strong> %s</li>`, html.EscapeString(guestCountDisplay(inq))),
		fmt.Sprintf(`<li><strong>Budget:</strong> %s</li>`, html.EscapeString(inq.Budget)),
		fmt.Sprintf(`<li><strong>Service Interest:</strong> %s</li>`, html.EscapeString(inq.ServiceInterest)),
		fmt.Sprintf(`<li><strong>Service Selection:</strong> %s</li>`, html.EscapeString(serviceSelectionText)),
		`</ul>`,
		`<h3 style="margin:0 0 8px 0;color:#1d2939;">Desired Menu Items</h3>`,
		formatDesiredItemsByCategoryHTML(inq.DesiredMenuItems),
		`<h3 style="margin:4px 0 8px 0;color:#1d2939;">Message</h3>`,
		fmt.Sprintf(`<p style="margin:0 0 16px 0;line-height:1.6;color:#344054;">%s</p>`, html.EscapeString(inq.Message)),
		fmt.Sprintf(`<p style="margin:0;padding:12px 14px;border-left:4px solid #1d4ed8;background:#eff6ff;line-height:1.7;color:#1d2939;">%s</p>`, html.EscapeString(ownerNote)),
		`</div></body></html>`,
	}, "\n"))

	return m
}
