package runner

import "github.com/vovakirdan/portfolio-runner/internal/config"

// TopicID selects the message and links an overlay shows.
type TopicID string

// NoTopic means no overlay is active.
const NoTopic TopicID = ""

// Link is an outbound link listed under a topic.
type Link struct {
	Label string
	URL   string
}

// Topic is one resolved entry of the topic table.
type Topic struct {
	ID      TopicID
	Title   string
	Message string
	Note    string
	Links   []Link
}

// Table maps topic IDs to their content. It is built once per Reset.
type Table struct {
	byID  map[TopicID]Topic
	order []TopicID
}

// NewTable builds a table from configuration, keeping declaration order.
// Later duplicates replace earlier ones.
func NewTable(topics []config.TopicConfig) Table {
	t := Table{byID: make(map[TopicID]Topic, len(topics))}
	for _, tc := range topics {
		id := TopicID(tc.ID)
		if _, seen := t.byID[id]; !seen {
			t.order = append(t.order, id)
		}
		topic := Topic{
			ID:      id,
			Title:   tc.Title,
			Message: tc.Message,
			Note:    tc.Note,
		}
		if topic.Title == "" {
			topic.Title = capitalize(tc.ID)
		}
		for _, l := range tc.Links {
			topic.Links = append(topic.Links, Link{Label: l.Label, URL: l.URL})
		}
		t.byID[id] = topic
	}
	return t
}

// Lookup returns the topic for id. Unknown IDs resolve to a topic that
// carries only the capitalized ID as title.
func (t Table) Lookup(id TopicID) (Topic, bool) {
	topic, ok := t.byID[id]
	if !ok {
		return Topic{ID: id, Title: capitalize(string(id))}, false
	}
	return topic, true
}

// All returns the topics in declaration order.
func (t Table) All() []Topic {
	out := make([]Topic, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// Len returns the number of topics.
func (t Table) Len() int {
	return len(t.order)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
