// Package scenario runs scripted put/get sequences against an LRU cache.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/evanjt06/intlru/cache"
	"github.com/evanjt06/intlru/internal"
	"gopkg.in/yaml.v2"
)

const (
	OpPut = "put"
	OpGet = "get"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrMismatch  = errors.New("get result mismatch")
)

// Step is one scripted call. Want and Miss are checked for gets only;
// a get with neither set is not checked.
type Step struct {
	Op    string `yaml:"op"`
	Key   int    `yaml:"key"`
	Value int    `yaml:"value,omitempty"`
	Want  *int   `yaml:"want,omitempty"`
	Miss  bool   `yaml:"miss,omitempty"`
}

type Scenario struct {
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

type Result struct {
	Key   int
	Value int
	Hit   bool
}

func (r Result) String() string {
	if !r.Hit {
		return "miss"
	}
	return strconv.Itoa(r.Value)
}

func want(v int) *int { return &v }

// Default is the capacity-2 demonstration script.
func Default() Scenario {
	return Scenario{
		Capacity: 2,
		Steps: []Step{
			{Op: OpPut, Key: 1, Value: 1},
			{Op: OpPut, Key: 2, Value: 2},
			{Op: OpGet, Key: 1, Want: want(1)},
			{Op: OpPut, Key: 3, Value: 3}, // evicts 2
			{Op: OpGet, Key: 2, Miss: true},
			{Op: OpPut, Key: 4, Value: 4}, // evicts 1
			{Op: OpGet, Key: 1, Miss: true},
			{Op: OpGet, Key: 3, Want: want(3)},
			{Op: OpGet, Key: 4, Want: want(4)},
		},
	}
}

func (s Scenario) Validate() error {
	if err := internal.ValidateCapacity(s.Capacity); err != nil {
		return err
	}
	for i, step := range s.Steps {
		if step.Op != OpPut && step.Op != OpGet {
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, step.Op)
		}
		if step.Want != nil && step.Miss {
			return fmt.Errorf("step %d: want and miss are exclusive", i)
		}
	}
	return nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Run executes the steps in order against c, writing one line per get to
// out. Every get is run even after a mismatch; the first mismatch is
// returned.
func Run(s Scenario, c *cache.LRUCache, out io.Writer) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	var firstErr error
	for i, step := range s.Steps {
		switch step.Op {
		case OpPut:
			c.Put(step.Key, step.Value)
			c.Logger.Debugw("Scenario put", "step", i, "key", step.Key, "value", step.Value)
		case OpGet:
			v, ok := c.Get(step.Key)
			r := Result{Key: step.Key, Value: v, Hit: ok}
			results = append(results, r)
			if _, err := fmt.Fprintln(out, r); err != nil {
				return results, fmt.Errorf("write result: %w", err)
			}
			if firstErr == nil && !step.matches(r) {
				firstErr = fmt.Errorf("step %d: get(%d) = %s: %w", i, step.Key, r, ErrMismatch)
			}
		}
	}
	return results, firstErr
}

func (s Step) matches(r Result) bool {
	switch {
	case s.Miss:
		return !r.Hit
	case s.Want != nil:
		return r.Hit && r.Value == *s.Want
	}
	return true
}
