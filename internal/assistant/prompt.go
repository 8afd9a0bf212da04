package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mybusnow/internal/models"
)

// Language is the reply language the rider picked.
type Language string

const (
	English Language = "english"
	Telugu  Language = "telugu"
)

// ParseLanguage maps a tag to a Language; anything other than telugu is English.
func ParseLanguage(tag string) Language {
	if strings.EqualFold(strings.TrimSpace(tag), string(Telugu)) {
		return Telugu
	}
	return English
}

// DisplayName is how the language is named inside the prompt.
func (l Language) DisplayName() string {
	if l == Telugu {
		return "Telugu (తెలుగు)"
	}
	return "English"
}

// RouteInfo is the per-route shape the assistant grounds its answers on.
type RouteInfo struct {
	RouteNumber string  `json:"route_number"`
	Name        string  `json:"name"`
	NameTelugu  string  `json:"name_telugu,omitempty"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Fare        float64 `json:"fare"`
	Frequency   string  `json:"frequency"`
	Stops       string  `json:"stops"`
}

// RouteInfos flattens routes into the prompt shape; stops become a
// comma-joined list of names.
func RouteInfos(routes []models.Route) []RouteInfo {
	infos := make([]RouteInfo, 0, len(routes))
	for _, r := range routes {
		names := make([]string, 0, len(r.Stops))
		for _, s := range r.Stops {
			names = append(names, s.Name)
		}
		infos = append(infos, RouteInfo{
			RouteNumber: r.RouteNumber,
			Name:        r.RouteName,
			NameTelugu:  r.RouteNameTelugu,
			From:        r.StartPoint,
			To:          r.EndPoint,
			Fare:        r.Fare,
			Frequency:   r.Frequency,
			Stops:       strings.Join(names, ", "),
		})
	}
	return infos
}

const promptTemplate = `You are a helpful bilingual bus assistant for MyBusNow app.
User question: "%s"

Available bus routes data:
%s

Respond naturally in %s based on the user's question language.
If they ask in Telugu, respond in Telugu. If English, respond in English.
Be friendly, concise, and helpful. Include route numbers, fares, and timings when relevant.
If asking about routes between places, suggest the best route.`

// BuildPrompt embeds the route snapshot, the question and the reply language.
func BuildPrompt(routes []models.Route, question string, lang Language) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(RouteInfos(routes)); err != nil {
		return "", fmt.Errorf("encode route info: %w", err)
	}
	data := strings.TrimSuffix(buf.String(), "\n")
	return fmt.Sprintf(promptTemplate, question, data, lang.DisplayName()), nil
}
