package research

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Responses is a timeline that decodes from YAML by dispatching on each
// entry's "type" field. Entries with an unrecognised type decode to Unknown.
type Responses []Response

type responseHeader struct {
	Type string `yaml:"type"`
}

type missionDoc struct {
	Type    string `yaml:"type"`
	Mission `yaml:",inline"`
}

type transcriptDoc struct {
	Type       string `yaml:"type"`
	Transcript `yaml:",inline"`
}

type ratingDoc struct {
	Type   string `yaml:"type"`
	Rating `yaml:",inline"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (rs *Responses) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: responses must be a sequence", value.Line)
	}

	out := make(Responses, 0, len(value.Content))
	for _, node := range value.Content {
		r, err := decodeResponse(node)
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	*rs = out
	return nil
}

func decodeResponse(node *yaml.Node) (Response, error) {
	var hdr responseHeader
	if err := node.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("line %d: decode response: %w", node.Line, err)
	}

	switch Kind(hdr.Type) {
	case KindMission:
		var d missionDoc
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("line %d: decode mission: %w", node.Line, err)
		}
		return d.Mission, nil
	case KindTranscript:
		var d transcriptDoc
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("line %d: decode transcript: %w", node.Line, err)
		}
		return d.Transcript, nil
	case KindRating:
		var d ratingDoc
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("line %d: decode rating: %w", node.Line, err)
		}
		return d.Rating, nil
	default:
		fields := map[string]any{}
		if err := node.Decode(&fields); err != nil {
			return nil, fmt.Errorf("line %d: decode response: %w", node.Line, err)
		}
		delete(fields, "type")
		return Unknown{Type: hdr.Type, Fields: fields}, nil
	}
}

// MarshalYAML implements yaml.Marshaler.
func (rs Responses) MarshalYAML() (any, error) {
	out := make([]any, 0, len(rs))
	for _, r := range rs {
		switch r := r.(type) {
		case Mission:
			out = append(out, missionDoc{Type: string(KindMission), Mission: r})
		case Transcript:
			out = append(out, transcriptDoc{Type: string(KindTranscript), Transcript: r})
		case Rating:
			out = append(out, ratingDoc{Type: string(KindRating), Rating: r})
		case Unknown:
			m := make(map[string]any, len(r.Fields)+1)
			for k, v := range r.Fields {
				m[k] = v
			}
			m["type"] = r.Type
			out = append(out, m)
		default:
			return nil, fmt.Errorf("unsupported response %T", r)
		}
	}
	return out, nil
}
