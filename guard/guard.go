package guard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"post-catering/common/constant"
	"post-catering/model"
)

var urlRegex = regexp.MustCompile(`(?i)(https?://|www\.)`)

// Store keeps the sliding-window state the guard consults: per-IP event
// timestamps, recently seen duplicate keys, and blocked-event counts for
// alerting. Implementations prune their own expired state.
type Store interface {
	IPEventCounts(ctx context.Context, clientIP string, now time.Time) (minuteCount int, hourCount int, err error)
	RecordIPEvent(ctx context.Context, clientIP string, now time.Time) error
	IsDuplicate(ctx context.Context, key string, window time.Duration, now time.Time) (bool, error)
	RecordDuplicate(ctx context.Context, key string, window time.Duration, now time.Time) error
	RecordBlocked(ctx context.Context, window time.Duration, now time.Time) (int, error)
}

// DomainResolver is satisfied by *net.Resolver.
type DomainResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Guard screens inquiry submissions before any of them touch the database.
// Checks run in a fixed order and the first hit wins: honeypot, per-IP rate
// limits, link count, duplicate window, then email domain policy.
type Guard struct {
	Store    Store
	Resolver DomainResolver

	TimeNow func() time.Time

	honeypotField    string
	minuteLimit      int
	hourLimit        int
	maxLinks         int
	duplicateWindow  time.Duration
	alertThreshold   int
	alertWindow      time.Duration
	blockedDomains   map[string]struct{}
	allowedDomains   map[string]struct{}
	requireDomainDNS bool
}

func NewGuard(cfg *viper.Viper, store Store, resolver DomainResolver) *Guard {
	cfg.SetDefault("inquiry.honeypot_field", constant.DefaultHoneypotField)
	cfg.SetDefault("inquiry.rate_limit_per_ip_minute", constant.DefaultRateLimitPerIPMinute)
	cfg.SetDefault("inquiry.rate_limit_per_ip_hour", constant.DefaultRateLimitPerIPHour)
	cfg.SetDefault("inquiry.max_links", constant.DefaultMaxLinks)
	cfg.SetDefault("inquiry.duplicate_window", time.Duration(constant.DefaultDuplicateWindowSeconds)*time.Second)
	cfg.SetDefault("inquiry.alert_threshold_per_minute", constant.DefaultAlertThreshold)
	cfg.SetDefault("inquiry.alert_window", time.Duration(constant.DefaultAlertWindowSeconds)*time.Second)
	cfg.SetDefault("inquiry.blocked_email_domains", constant.DefaultBlockedEmailDomains)

	return &Guard{
		Store:    store,
		Resolver: resolver,
		TimeNow:  time.Now,

		honeypotField:    cfg.GetString("inquiry.honeypot_field"),
		minuteLimit:      cfg.GetInt("inquiry.rate_limit_per_ip_minute"),
		hourLimit:        cfg.GetInt("inquiry.rate_limit_per_ip_hour"),
		maxLinks:         cfg.GetInt("inquiry.max_links"),
		duplicateWindow:  cfg.GetDuration("inquiry.duplicate_window"),
		alertThreshold:   cfg.GetInt("inquiry.alert_threshold_per_minute"),
		alertWindow:      cfg.GetDuration("inquiry.alert_window"),
		blockedDomains:   domainSet(cfg.GetStringSlice("inquiry.blocked_email_domains")),
		allowedDomains:   domainSet(cfg.GetStringSlice("inquiry.allowed_email_domains")),
		requireDomainDNS: cfg.GetBool("inquiry.require_email_domain_dns"),
	}
}

// Evaluate returns the verdict for one submission. It mutates no inquiry
// state; a passing duplicate key is only staged in Meta and committed later
// through RecordSuccessfulSubmission, so failed saves never poison the
// window. A non-nil error means the store is unavailable, not a rejection.
func (g *Guard) Evaluate(ctx context.Context, inq *model.Inquiry, raw map[string]any, clientIP, userAgent string) (model.AbuseCheckResult, error) {
	now := g.TimeNow()

	clientIP = strings.TrimSpace(clientIP)
	if clientIP == "" {
		clientIP = "unknown"
	}
	userAgent = strings.TrimSpace(userAgent)

	res := model.AbuseCheckResult{
		Allow:      true,
		StatusCode: http.StatusOK,
		Meta: model.AbuseMeta{
			IPHash:        hashValue(clientIP),
			UserAgentHash: hashValue(userAgent),
		},
	}

	if honeypotValue(raw, g.honeypotField) != "" {
		res.Alert = g.recordBlocked(ctx, now)
		res.Allow = false
		res.StatusCode = http.StatusAccepted
		res.WarningCode = constant.WarnInquiryAccepted
		res.SilentAccept = true
		return res, nil
	}

	minuteCount, hourCount, err := g.Store.IPEventCounts(ctx, clientIP, now)
	if err != nil {
		return res, err
	}

	if minuteCount >= max(g.minuteLimit, 1) {
		res.Alert = g.recordBlocked(ctx, now)
		res.Allow = false
		res.StatusCode = http.StatusTooManyRequests
		res.Warning = constant.MsgRateLimited
		res.WarningCode = constant.WarnRateLimitMinute
		return res, nil
	}
	if hourCount >= max(g.hourLimit, 1) {
		res.Alert = g.recordBlocked(ctx, now)
		res.Allow = false
		res.StatusCode = http.StatusTooManyRequests
		res.Warning = constant.MsgRateLimited
		res.WarningCode = constant.WarnRateLimitHour
		return res, nil
	}

	if err := g.Store.RecordIPEvent(ctx, clientIP, now); err != nil {
		return res, err
	}

	combined := strings.Join([]string{inq.FullName, inq.Message, inq.EventType}, " ")
	if len(urlRegex.FindAllString(combined, -1)) > max(g.maxLinks, 0) {
		res.Alert = g.recordBlocked(ctx, now)
		res.Allow = false
		res.StatusCode = http.StatusTooManyRequests
		res.Warning = constant.MsgSpamLinkThreshold
		res.WarningCode = constant.WarnSpamLinkThreshold
		return res, nil
	}

	if key := duplicateKey(inq); key != "" {
		seen, err := g.Store.IsDuplicate(ctx, key, g.duplicateWindow, now)
		if err != nil {
			return res, err
		}
		if seen {
			res.Alert = g.recordBlocked(ctx, now)
			res.Allow = false
			res.StatusCode = http.StatusAccepted
			res.WarningCode = constant.WarnDuplicateSubmission
			res.SilentAccept = true
			return res, nil
		}
		res.Meta.DuplicateKey = key
	}

	emailDomain := domainOf(inq.Email)
	res.Meta.EmailDomain = emailDomain

	if emailDomain != "" {
		if _, blocked := g.blockedDomains[emailDomain]; blocked {
			res.Alert = g.recordBlocked(ctx, now)
			res.Allow = false
			res.StatusCode = http.StatusBadRequest
			res.Warning = constant.MsgDomainBlocked
			res.WarningCode = constant.WarnEmailDomainBlocked
			return res, nil
		}

		if len(g.allowedDomains) > 0 {
			if _, allowed := g.allowedDomains[emailDomain]; !allowed {
				res.Alert = g.recordBlocked(ctx, now)
				res.Allow = false
				res.StatusCode = http.StatusBadRequest
				res.Warning = constant.MsgDomainNotAllowed
				res.WarningCode = constant.WarnEmailDomainNotAllowed
				return res, nil
			}
		}

		if g.requireDomainDNS {
			if _, err := g.Resolver.LookupHost(ctx, emailDomain); err != nil {
				res.Alert = g.recordBlocked(ctx, now)
				res.Allow = false
				res.StatusCode = http.StatusBadRequest
				res.Warning = constant.MsgDomainUnreachable
				res.WarningCode = constant.WarnEmailDomainUnreachable
				return res, nil
			}
		}
	}

	return res, nil
}

// RecordSuccessfulSubmission commits the duplicate key staged during
// Evaluate. Call it only after the inquiry row is persisted.
func (g *Guard) RecordSuccessfulSubmission(ctx context.Context, res model.AbuseCheckResult) error {
	if res.Meta.DuplicateKey == "" {
		return nil
	}
	return g.Store.RecordDuplicate(ctx, res.Meta.DuplicateKey, g.duplicateWindow, g.TimeNow())
}

func (g *Guard) recordBlocked(ctx context.Context, now time.Time) bool {
	count, err := g.Store.RecordBlocked(ctx, g.alertWindow, now)
	if err != nil {
		return false
	}
	return count >= max(g.alertThreshold, 1)
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:12]
}

func honeypotValue(raw map[string]any, field string) string {
	if raw == nil {
		return ""
	}
	s, _ := raw[field].(string)
	return strings.TrimSpace(s)
}

func duplicateKey(inq *model.Inquiry) string {
	phone := ""
	if normalized, ok := model.NormalizePhone(inq.Phone); ok {
		phone = normalized
	}

	parts := []string{
		model.NormalizeEmail(inq.Email),
		phone,
		strings.TrimSpace(inq.EventDate),
		strings.ToLower(strings.TrimSpace(inq.ServiceInterest)),
	}

	key := strings.Join(parts, "|")
	if strings.Trim(key, "|") == "" {
		return ""
	}
	return key
}

func domainOf(email string) string {
	normalized := model.NormalizeEmail(email)
	at := strings.Index(normalized, "@")
	if at < 0 {
		return ""
	}
	return normalized[at+1:]
}

func domainSet(domains []string) map[string]struct{} {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			set[d] = struct{}{}
		}
	}
	return set
}
