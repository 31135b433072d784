package research

// Kind is the discriminant of a Response.
type Kind string

const (
	KindMission    Kind = "mission"
	KindTranscript Kind = "transcript"
	KindRating     Kind = "rating"
)

// Response is one entry in a participant's timeline.
//
// The set of implementations is closed: Mission, Transcript, Rating and
// Unknown. Type switches over Response should handle all four.
//
//sumtype:decl
type Response interface {
	Kind() Kind
	isResponse()
}

// StatusColor selects the dot color of a mission outcome.
type StatusColor string

const (
	StatusColorGreen   StatusColor = "green"
	StatusColorNeutral StatusColor = "neutral"
)

// Mission is the outcome of a task the participant attempted.
type Mission struct {
	Icon        string      `yaml:"icon,omitempty"`
	IconColor   string      `yaml:"icon_color,omitempty"`
	Title       string      `yaml:"title"`
	Status      string      `yaml:"status"`
	StatusColor StatusColor `yaml:"status_color,omitempty"`
	Duration    string      `yaml:"duration,omitempty"`
	Screenshots []string    `yaml:"screenshots,omitempty"`
	Highlighted bool        `yaml:"highlighted,omitempty"`
}

// Transcript is one spoken line, optionally with a term to emphasize.
type Transcript struct {
	Timestamp     string `yaml:"timestamp"`
	Text          string `yaml:"text"`
	HighlightTerm string `yaml:"highlight,omitempty"`
}

// Rating is a scale answer. Rating is expected in [0, MaxRating] but is not
// corrected when it is not.
type Rating struct {
	Icon        string `yaml:"icon,omitempty"`
	IconColor   string `yaml:"icon_color,omitempty"`
	Question    string `yaml:"question"`
	Rating      int    `yaml:"rating"`
	MaxRating   int    `yaml:"max_rating"`
	Highlighted bool   `yaml:"highlighted,omitempty"`
}

// Unknown preserves a response whose type tag this version does not know.
type Unknown struct {
	Type   string
	Fields map[string]any
}

func (Mission) Kind() Kind    { return KindMission }
func (Transcript) Kind() Kind { return KindTranscript }
func (Rating) Kind() Kind     { return KindRating }
func (u Unknown) Kind() Kind  { return Kind(u.Type) }

func (Mission) isResponse()    {}
func (Transcript) isResponse() {}
func (Rating) isResponse()     {}
func (Unknown) isResponse()    {}

// HighlightWorthy reports whether r appears under the highlights filter.
func HighlightWorthy(r Response) bool {
	switch r := r.(type) {
	case Mission:
		return r.Highlighted
	case Transcript:
		return r.HighlightTerm != ""
	case Rating:
		return r.Highlighted
	case Unknown:
		return false
	default:
		return false
	}
}

// HighlightCount counts the highlight-worthy responses.
func HighlightCount(rs []Response) int {
	n := 0
	for _, r := range rs {
		if HighlightWorthy(r) {
			n++
		}
	}
	return n
}
