// Package topics adds free-form help topics to a cobra command tree.
// Topics are text or markdown files read from an fs.FS, so they can be
// embedded into the binary, and are reached through `help <topic>`.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ListKeyword lists the available topics when given to the help command
const ListKeyword = "topics"

// TopicManager holds the topics known to one command tree
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is a single help document
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Load reads every topic file found at the top of fsys
func Load(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if !tm.supported(ext) {
			continue
		}
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		tm.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
	}

	log.Trace().Int("count", len(tm.topics)).Msg("Help topics loaded")
	return tm, nil
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names such as --separator
// also match a topic stored as option-separator.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic formatted for the terminal
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, topic.Format)
}

// Install replaces the help command of rootCmd with one that also knows
// about topics
func (tm *TopicManager) Install(rootCmd *cobra.Command, groupID string) {
	name := rootCmd.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic in the application.\n" +
			"Simply type " + name + " help [path to command or topic] for full details.\n\n" +
			"To see all available help topics:\n  " + name + " help " + ListKeyword,
		GroupID: groupID,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{ListKeyword}
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return rootCmd.Help()
			}
			if args[0] == ListKeyword {
				tm.writeList(cmd, name)
				return nil
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				_, err := fmt.Fprint(out, tm.Render(topic))
				return err
			}

			target, _, err := rootCmd.Find(args)
			if target == nil || err != nil {
				_, _ = fmt.Fprintf(out, "Unknown help topic %q\n", args)
				return rootCmd.Usage()
			}
			return target.Help()
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
}

func (tm *TopicManager) writeList(cmd *cobra.Command, name string) {
	out := cmd.OutOrStdout()
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No help topics available.")
		return
	}

	var options, general []string
	for _, n := range names {
		if opt, ok := strings.CutPrefix(n, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, n)
		}
	}

	_, _ = fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(out, "\nGeneral topics:")
		for _, n := range general {
			_, _ = fmt.Fprintf(out, "  %s\n", n)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(out, "\nOption topics:")
		for _, n := range options {
			_, _ = fmt.Fprintf(out, "  --%s\n", n)
		}
	}
	_, _ = fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", name)
}
