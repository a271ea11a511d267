package services

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Classifier maps a symptom vector to a disease label with a decision
// tree trained offline. The artifact is a JSON file: the symptom
// vocabulary, the label set, and the tree nodes with class
// distributions at the leaves.
type Classifier struct {
	symptoms []string
	index    map[string]int
	labels   []string
	nodes    []treeNode
}

type treeNode struct {
	// Feature is the symptom index tested at this node, -1 for a leaf.
	Feature int `json:"feature"`
	Left    int `json:"left"`
	Right   int `json:"right"`
	// Scores is the class distribution at a leaf, one entry per label.
	Scores []float64 `json:"scores,omitempty"`
}

type classifierArtifact struct {
	Symptoms []string   `json:"symptoms"`
	Labels   []string   `json:"labels"`
	Nodes    []treeNode `json:"nodes"`
}

// LabelScore is one ranked prediction with its confidence in percent.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Prediction is the outcome of one classification call.
type Prediction struct {
	Disease string       `json:"disease"`
	Top3    []LabelScore `json:"top3"`
	Entered []string     `json:"entered"`
	Unknown []string     `json:"unknown,omitempty"`
}

// LoadClassifier reads the model artifact from path.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var artifact classifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	if len(artifact.Symptoms) == 0 || len(artifact.Labels) == 0 || len(artifact.Nodes) == 0 {
		return nil, fmt.Errorf("model file %s is incomplete", path)
	}

	index := make(map[string]int, len(artifact.Symptoms))
	for i, s := range artifact.Symptoms {
		index[s] = i
	}

	return &Classifier{
		symptoms: artifact.Symptoms,
		index:    index,
		labels:   artifact.Labels,
		nodes:    artifact.Nodes,
	}, nil
}

// Symptoms returns the vocabulary with underscores prettified to
// spaces, for display.
func (c *Classifier) Symptoms() []string {
	pretty := make([]string, len(c.symptoms))
	for i, s := range c.symptoms {
		pretty[i] = strings.ReplaceAll(s, "_", " ")
	}
	return pretty
}

// Predict parses a comma-separated symptom list, vectorizes the known
// names, and walks the tree. Unknown names are echoed back, not errors.
func (c *Classifier) Predict(input string) Prediction {
	var pred Prediction
	present := make([]bool, len(c.symptoms))

	for _, raw := range strings.Split(strings.ToLower(input), ",") {
		name := strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")
		if name == "" {
			continue
		}
		pred.Entered = append(pred.Entered, strings.ReplaceAll(name, "_", " "))
		if i, ok := c.index[name]; ok {
			present[i] = true
		} else {
			pred.Unknown = append(pred.Unknown, strings.ReplaceAll(name, "_", " "))
		}
	}

	scores := c.walk(present)

	ranked := make([]LabelScore, len(c.labels))
	for i, label := range c.labels {
		ranked[i] = LabelScore{Label: label, Score: scores[i] * 100}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	pred.Disease = ranked[0].Label
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	pred.Top3 = ranked
	return pred
}

func (c *Classifier) walk(present []bool) []float64 {
	node := c.nodes[0]
	for node.Feature >= 0 {
		if present[node.Feature] {
			node = c.nodes[node.Right]
		} else {
			node = c.nodes[node.Left]
		}
	}
	return node.Scores
}
