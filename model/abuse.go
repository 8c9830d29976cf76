package model

// AbuseMeta is diagnostic context attached to a verdict; hashes are short
// sha256 prefixes so logs never carry raw IPs or user agents.
type AbuseMeta struct {
	IPHash        string
	UserAgentHash string
	EmailDomain   string
	DuplicateKey  string
}

// AbuseCheckResult is the ephemeral verdict of the abuse guard for one
// submission. Constructed and consumed within a single request.
type AbuseCheckResult struct {
	Allow        bool
	StatusCode   int
	Warning      string
	WarningCode  string
	SilentAccept bool
	Alert        bool
	Meta         AbuseMeta
}
