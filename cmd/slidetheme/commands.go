package main

import (
	"fmt"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/deck/deckdbg"
	"github.com/npillmayer/slidetheme/theme"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "slidetheme",
		Short:        "Inspect and convert slide themes",
		SilenceUsage: true,
	}
	cmd.AddCommand(themesCmd(), showCmd(), convertCmd())
	return cmd
}

// loadEngine creates an engine with the built-in themes plus all themes
// found in dir, if dir is not empty.
func loadEngine(dir string) (*theme.Engine, error) {
	engine := theme.NewEngine()
	if dir == "" {
		return engine, nil
	}
	if _, err := engine.LoadDir(dir); err != nil {
		return nil, err
	}
	return engine, nil
}

func themesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			engine, err := loadEngine(dir)
			if err != nil {
				return err
			}
			for _, name := range engine.Names() {
				fmt.Fprintf(c.OutOrStdout(), "- %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory with additional theme files")
	return cmd
}

func showCmd() *cobra.Command {
	var dir string
	var dot bool

	cmd := &cobra.Command{
		Use:   "show THEME",
		Short: "Apply a theme to a sample deck and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			engine, err := loadEngine(dir)
			if err != nil {
				return err
			}
			doc, err := sampleDeck()
			if err != nil {
				return err
			}
			if err := engine.Apply(doc, args[0]); err != nil {
				return err
			}
			if dot {
				deckdbg.ToGraphViz(doc, c.OutOrStdout(), nil)
				return nil
			}
			fmt.Fprint(c.OutOrStdout(), deckdbg.Print(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory with additional theme files")
	cmd.Flags().BoolVar(&dot, "dot", false, "Output a GraphViz digraph instead of text")
	return cmd
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a CSS, HTML or YAML theme file to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			def, err := theme.ReadDefinitionFile(args[0])
			if err != nil {
				return err
			}
			if _, err := def.Compile(); err != nil {
				return err
			}
			return def.WriteYAML(c.OutOrStdout())
		},
	}
	return cmd
}

// sampleDeck builds a small deck using most of the standard element kinds.
func sampleDeck() (*deck.Document, error) {
	return deck.NewDocument(nil,
		deck.Item(deck.TitleSlide, "",
			deck.Item(deck.Title, "TGIF"),
			deck.Item(deck.Subtitle, "Thank God It's Friday"),
			deck.Item(deck.Author, "N.N."),
			deck.Item(deck.Date, "2025-09-26"),
		),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Agenda"),
			deck.Item(deck.Body, "",
				deck.Item(deck.ItemList, "",
					deck.Item(deck.ItemListItem, "Review"),
					deck.Item(deck.ItemListItem, "Outlook"),
				),
				deck.Item(deck.HorizontalRule, ""),
				deck.Item(deck.Paragraph, "Questions welcome"),
			),
		),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Code"),
			deck.Item(deck.Body, "",
				deck.Item(deck.PreformattedBlock, "match(Slide, HeadLine)"),
				deck.Item(deck.BlockQuote, "Less is more"),
			),
		),
	)
}
