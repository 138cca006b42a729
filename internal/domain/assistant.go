package domain

import "strings"

// DefaultReply is returned when no keyword rule matches.
const DefaultReply = "Hello! I am your Rainwater Voice Assistant. Ask me about rainwater, soil, or overflow."

type replyRule struct {
	keyword string
	reply   string
}

// replyRules is evaluated in order; the first keyword contained in the query
// wins. "rain" is checked before "overflow", so a query mentioning both gets
// the harvesting reply. Keep this a slice: a map would lose the precedence.
var replyRules = []replyRule{
	{"rain", "Rainwater harvesting stores rainwater and recharges groundwater."},
	{"soil", "Soil in your area has medium infiltration capacity, so a recharge pit is recommended."},
	{"overflow", "If your tank overflows, you should divert extra water to recharge pits or nearby green spaces."},
}

// Reply answers a free-text assistant query by case-insensitive substring
// matching against the fixed rule table.
func Reply(query string) string {
	q := strings.ToLower(query)
	for _, r := range replyRules {
		if strings.Contains(q, r.keyword) {
			return r.reply
		}
	}
	return DefaultReply
}
