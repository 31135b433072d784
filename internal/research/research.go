// Package research holds the review data model: content blocks, participants
// and the timeline of responses recorded for each participant.
package research

// ContentBlock is a unit of analysis content shown in the results list.
type ContentBlock struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Kind          string `yaml:"kind,omitempty"`
	Summary       string `yaml:"summary,omitempty"`
	ResponseCount int    `yaml:"response_count,omitempty"`
}

// ParticipantStatus is the completion state of a research session.
type ParticipantStatus string

const (
	StatusCompleted  ParticipantStatus = "completed"
	StatusInProgress ParticipantStatus = "in_progress"
)

// Label returns a human readable status.
func (s ParticipantStatus) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	default:
		return string(s)
	}
}

// Participant is one session respondent with a video and a response timeline.
type Participant struct {
	ID                string            `yaml:"id"`
	ParticipantID     string            `yaml:"participant_id"`
	Status            ParticipantStatus `yaml:"status"`
	VideoThumbnailURL string            `yaml:"video_thumbnail_url,omitempty"`
	VideoDuration     string            `yaml:"video_duration,omitempty"`

	// Responses are in session order; consumers filter but never re-sort.
	Responses Responses `yaml:"responses,omitempty"`
}

// Highlights returns the highlight-worthy responses in timeline order.
func (p Participant) Highlights() []Response {
	var out []Response
	for _, r := range p.Responses {
		if HighlightWorthy(r) {
			out = append(out, r)
		}
	}
	return out
}

// Dataset is everything the review screen needs from the data source.
type Dataset struct {
	Blocks       []ContentBlock `yaml:"blocks"`
	Participants []Participant  `yaml:"participants"`
}

// ParticipantIndex returns the index of the participant with the given id, or -1.
func (d Dataset) ParticipantIndex(id string) int {
	for i, p := range d.Participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Block returns the block with the given id.
func (d Dataset) Block(id string) (ContentBlock, bool) {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return ContentBlock{}, false
}
