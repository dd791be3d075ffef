package plan

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/naming"
)

// Placeholders a command template may reference, beyond the path template ones.
const (
	ParamID           = "id"
	ParamIndexPath    = "index_path"
	ParamOutputPath   = "output_path"
	ParamRunID        = "run_id"
	ParamStopwordList = "stopword_list"
)

var commandParams = []string{
	ParamID,
	naming.ParamStemming,
	naming.ParamStopwords,
	naming.ParamModel,
	naming.ParamModelID,
	ParamIndexPath,
	ParamOutputPath,
	ParamRunID,
	ParamStopwordList,
}

// Command is an argv template for the downstream tool. Each whitespace-separated
// word is rendered on its own, so rendered paths containing spaces stay one argument.
type Command struct {
	args []*naming.Template
}

func ParseCommand(s string) (*Command, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil, fmt.Errorf("command is empty")
	}

	c := &Command{args: make([]*naming.Template, 0, len(words))}
	for i, w := range words {
		t := &naming.Template{ID: fmt.Sprintf("arg%d", i), Pattern: w}
		if err := t.Restrict(commandParams...); err != nil {
			return nil, err
		}
		c.args = append(c.args, t)
	}
	return c, nil
}

// Render returns the argv for exp. Words that render empty, such as
// {{stopword_list}} when stopwords are disabled, are dropped.
func (c *Command) Render(exp experiment.Experiment) ([]string, error) {
	params := naming.Params{
		ParamID:               exp.ID.String(),
		naming.ParamStemming:  exp.Stemming.Label(),
		naming.ParamStopwords: exp.Stopwords.Label(),
		naming.ParamModel:     exp.Model.Label(),
		naming.ParamModelID:   exp.ModelID,
		ParamIndexPath:        exp.IndexPath,
		ParamOutputPath:       exp.OutputPath,
		ParamRunID:            exp.RunID,
		ParamStopwordList:     exp.StopwordList,
	}

	argv := make([]string, 0, len(c.args))
	for _, t := range c.args {
		arg, err := t.Render(params)
		if err != nil {
			return nil, err
		}
		if arg == "" {
			continue
		}
		argv = append(argv, arg)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("command rendered empty for %s", exp.RunID)
	}
	return argv, nil
}
