// Package docs embeds the user documentation, one markdown file per topic.
//
// readme.md is the index: it presents folio and lists every other topic as a
// "* name: summary" bullet.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing all the others.
const Index = "readme"

// All stands for every topic of the index, in order.
const All = "*"

// ErrUnknownTopic is returned for a topic without documentation.
var ErrUnknownTopic = errors.New("unknown topic")

var entry = regexp.MustCompile(`^\*\s+([a-z-]+):`)

// Topics returns the topics listed by the index, in order.
func Topics() []string {
	index, err := files.ReadFile(Index + ".md")
	if err != nil {
		panic(err) // embedded
	}
	var topics []string
	sc := bufio.NewScanner(bytes.NewReader(index))
	for sc.Scan() {
		if m := entry.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, m[1])
		}
	}
	return topics
}

// Topic returns the markdown of a single topic.
func Topic(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".md")
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return "", fmt.Errorf("%w %q", ErrUnknownTopic, name)
	}
	md, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w %q, try one of %s", ErrUnknownTopic, name, strings.Join(Topics(), ", "))
	}
	return string(md), nil
}

// Read returns the markdown of each topic, one after the other.
// All expands to every topic. Without topics it is the index.
func Read(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{Index}
	}
	var expanded []string
	for _, n := range names {
		if n == All {
			expanded = append(expanded, Topics()...)
			continue
		}
		expanded = append(expanded, n)
	}
	docs := make([]string, 0, len(expanded))
	for _, n := range expanded {
		md, err := Topic(n)
		if err != nil {
			return "", err
		}
		docs = append(docs, strings.TrimSpace(md))
	}
	return strings.Join(docs, "\n\n"), nil
}
