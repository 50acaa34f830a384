//
//  internal/requestinfo/requestinfo.go
//
//  Per-request client metadata: parsed user-agent, crawler class, path,
//  and timestamp.  The struct is inert, so it is safe to log.
//
//  Dependencies
//  • github.com/avct/uasurfer   (UA parsing)
//

package requestinfo

import (
	"context"
	"strings"
	"time"

	"github.com/avct/uasurfer"
)

// Agent classes used as metric labels.
const (
	AgentLLM   = "llm"
	AgentBot   = "bot"
	AgentHuman = "human"
)

// llmCrawlers maps lower-cased UA tokens to the crawler name reported in
// logs.  The list covers the crawlers that document llms.txt support or
// fetch it in practice.
var llmCrawlers = []struct{ token, name string }{
	{"gptbot", "GPTBot"},
	{"chatgpt-user", "ChatGPT-User"},
	{"oai-searchbot", "OAI-SearchBot"},
	{"claudebot", "ClaudeBot"},
	{"claude-web", "Claude-Web"},
	{"anthropic-ai", "anthropic-ai"},
	{"perplexitybot", "PerplexityBot"},
	{"google-extended", "Google-Extended"},
	{"ccbot", "CCBot"},
	{"bytespider", "Bytespider"},
	{"amazonbot", "Amazonbot"},
	{"applebot-extended", "Applebot-Extended"},
	{"meta-externalagent", "meta-externalagent"},
	{"cohere-ai", "cohere-ai"},
}

// Info describes the client behind one request.
type Info struct {
	UserAgent string    // Entire User-Agent header
	Browser   string    // "Chrome", "Firefox", ...
	OS        string    // "MacOSX", "Windows", "Linux", ...
	Device    string    // "Desktop", "Phone", "Tablet", ...
	Bot       bool      // uasurfer bot signature or known LLM crawler
	Crawler   string    // LLM crawler name, "" otherwise
	Path      string    // r.URL.Path
	Timestamp time.Time // UTC
}

// Agent returns the metric label for i.
func (i *Info) Agent() string {
	switch {
	case i == nil:
		return AgentHuman
	case i.Crawler != "":
		return AgentLLM
	case i.Bot:
		return AgentBot
	default:
		return AgentHuman
	}
}

type ctxKey struct{}

// FromContext returns the pointer stored by Enrich, or nil.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

// WithInfo returns a copy of ctx carrying info.
func WithInfo(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// Parse classifies a raw User-Agent header.
func Parse(header string) Info {
	u := uasurfer.Parse(header)
	info := Info{
		UserAgent: header,
		Browser:   strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		OS:        strings.TrimPrefix(u.OS.Name.String(), "OS"),
		Device:    deviceName(u.DeviceType),
		Bot:       u.IsBot(),
		Crawler:   llmCrawler(header),
	}
	if info.Crawler != "" {
		info.Bot = true
	}
	return info
}

func llmCrawler(header string) string {
	lc := strings.ToLower(header)
	for _, c := range llmCrawlers {
		if strings.Contains(lc, c.token) {
			return c.name
		}
	}
	return ""
}

func deviceName(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceConsole:
		return "Console"
	case uasurfer.DeviceWearable:
		return "Wearable"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}
