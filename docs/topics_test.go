package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (except readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := filepath.Base(file)
		if base == "readme.md" {
			continue
		}
		topic := strings.TrimSuffix(base, ".md")
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) unexpected error = %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) unexpected error = %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) does not contain topic %q", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() expected an error for an unknown topic")
	}
}

func TestTopicsAreWellFormedMarkdown(t *testing.T) {
	// Every topic must parse to a document whose first block is a level-1
	// heading, so glamour renders a titled page.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("%s does not start with a level-1 heading", file)
			}

			// fenced blocks must carry a language so glamour highlights them
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil {
						t.Errorf("%s has a fenced code block without a language", file)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
