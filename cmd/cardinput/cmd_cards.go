package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/cardinput/internal/testdata"
)

// cardsCmd manages saved card summaries
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage saved cards",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved cards, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCardsList,
}

var cardsRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a saved card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsRm,
}

var seedCount int

var cardsSeedCmd = &cobra.Command{
	Use:    "seed",
	Short:  "Store sample cards for trying out the list",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE:   runCardsSeed,
}

func init() {
	cardsSeedCmd.Flags().IntVarP(&seedCount, "count", "n", 5, "number of sample cards")
	cardsCmd.AddCommand(cardsListCmd, cardsRmCmd, cardsSeedCmd)
}

var headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var bodyCell = lipgloss.NewStyle().Padding(0, 1)

func runCardsList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cards, err := store.List(commandContext(cmd))
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved cards")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "BRAND", "LAST 4", "EXPIRY", "SAVED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
	for _, c := range cards {
		t.Row(c.ID, c.Brand, c.Last4, c.Expiry, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func runCardsRm(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Delete(commandContext(cmd), args[0]); err != nil {
		return err
	}
	logger.Info("card deleted", zap.String("id", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func runCardsSeed(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cards, err := testdata.Seed(commandContext(cmd), store, rng, seedCount)
	if err != nil {
		return err
	}
	logger.Info("sample cards stored", zap.Int("count", len(cards)))
	fmt.Fprintf(cmd.OutOrStdout(), "stored %d sample cards\n", len(cards))
	return nil
}
