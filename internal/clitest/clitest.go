// Package clitest runs a command in process against YAML scenario files.
// Each scenario names the arguments and environment of one run and the
// stdout, stderr and exit code it must produce.
//
//	scenarios:
//	  - name: json from env
//	    args: [cases, roll-call]
//	    env: {HARRY_FORMAT: json}
//	    stdout: |
//	      ["Brian","Nur","Gavan","Daniel"]
//
// Unlike the .ct golden files, scenarios can set environment variables and
// check stdout and stderr separately.
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

type Scenario struct {
	Name   string            `yaml:"name"`
	Args   []string          `yaml:"args"`
	Env    map[string]string `yaml:"env"`
	Stdout string            `yaml:"stdout"`
	Stderr string            `yaml:"stderr"`
	Exit   int               `yaml:"exit"`
}

// File is one scenario file. The parsed node tree is kept so that update
// mode can rewrite expectations without losing the rest of the document.
type File struct {
	Path      string
	Scenarios []Scenario

	root  yaml.Node
	nodes []*yaml.Node
}

// Read loads every .yaml and .yml file in dir, in lexical order.
func Read(dir string) ([]*File, error) {
	var files []*File
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f := &File{Path: path}
	if err := yaml.Unmarshal(data, &f.root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty document", path)
	}
	list := mapValue(f.root.Content[0], "scenarios")
	if list == nil || list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: scenarios must be a sequence", path)
	}
	if err := list.Decode(&f.Scenarios); err != nil {
		return nil, fmt.Errorf("%s: decode scenarios: %w", path, err)
	}
	f.nodes = list.Content
	return f, nil
}

// Suite runs scenario files against one in-process program.
type Suite struct {
	Program string
	Main    func() int
	Files   []*File
}

// Run runs every scenario as a subtest. With update set, mismatched
// expectations are written back to their files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	for _, f := range s.Files {
		t.Run(filepath.Base(f.Path), func(t *testing.T) {
			changed := false
			for i := range f.Scenarios {
				name := f.Scenarios[i].Name
				if name == "" {
					name = "scenario-" + strconv.Itoa(i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runOne(t, f, i, update) {
						changed = true
					}
				})
			}
			if changed {
				if err := f.save(); err != nil {
					t.Fatalf("update %s: %v", f.Path, err)
				}
			}
		})
	}
}

func (s *Suite) runOne(t *testing.T, f *File, i int, update bool) bool {
	sc := f.Scenarios[i]
	for k, v := range sc.Env {
		t.Setenv(k, v)
	}
	stdout, stderr, exit := s.capture(t, sc.Args)

	node := f.nodes[i]
	changed := false
	check := func(field, want, got string, set func()) {
		if want == got {
			return
		}
		if update {
			set()
			changed = true
			return
		}
		t.Errorf("%s mismatch (-want +got):\n%s", field, cmp.Diff(want, got))
	}
	check("exit", strconv.Itoa(sc.Exit), strconv.Itoa(exit), func() {
		setScalar(node, "exit", "!!int", strconv.Itoa(exit))
	})
	check("stdout", sc.Stdout, stdout, func() {
		setScalar(node, "stdout", "!!str", stdout)
	})
	check("stderr", sc.Stderr, stderr, func() {
		setScalar(node, "stderr", "!!str", stderr)
	})
	return changed
}

// capture runs the program with args, collecting what it writes to
// os.Stdout and os.Stderr.
func (s *Suite) capture(t *testing.T, args []string) (stdout, stderr string, exit int) {
	t.Helper()
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	oldArgs, oldOut, oldErr := os.Args, os.Stdout, os.Stderr
	os.Args = append([]string{s.Program}, args...)
	os.Stdout, os.Stderr = wOut, wErr

	var outBuf, errBuf bytes.Buffer
	done := make(chan struct{}, 2)
	drain := func(dst *bytes.Buffer, r io.Reader) {
		_, _ = io.Copy(dst, r)
		done <- struct{}{}
	}
	go drain(&outBuf, rOut)
	go drain(&errBuf, rErr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				exit = -1
			}
		}()
		exit = s.Main()
	}()

	os.Args, os.Stdout, os.Stderr = oldArgs, oldOut, oldErr
	wOut.Close()
	wErr.Close()
	<-done
	<-done
	rOut.Close()
	rErr.Close()
	return outBuf.String(), errBuf.String(), exit
}

func (f *File) save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f.root); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.Path, buf.Bytes(), 0o644)
}

func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func setScalar(m *yaml.Node, key, tag, value string) {
	v := mapValue(m, key)
	if v == nil {
		v = &yaml.Node{}
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, v)
	}
	*v = yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	if strings.Contains(value, "\n") && value != "\n" {
		v.Style = yaml.LiteralStyle
	}
}
