package dialogue

// Option configures a conversion call.
type Option func(*config)

type config struct {
	assistantName    string
	assistantNameSet bool
}

// WithAssistantName sets the speaker label that classifies as
// RoleAssistant (matched case-insensitively). Passing an empty string is
// valid and means no speaker is the assistant; it still counts as
// "supplied", which suppresses the PlainTranscriptToMessages fallback to
// DefaultAssistantName.
func WithAssistantName(name string) Option {
	return func(c *config) {
		c.assistantName = name
		c.assistantNameSet = true
	}
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// assistantNameOrDefault applies the historical fallback for the
// plain-transcript parsing path. Other paths use c.assistantName directly,
// so an unset option leaves no speaker matching assistant there. The two
// behaviors diverge on purpose; unifying them would silently reclassify
// existing transcripts.
func (c *config) assistantNameOrDefault() string {
	if c.assistantNameSet {
		return c.assistantName
	}
	return DefaultAssistantName
}
