package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/undercover/internal/models"
	personaRepo "github.com/KirkDiggler/undercover/internal/repositories/persona"
	gameService "github.com/KirkDiggler/undercover/internal/services/game"
	"github.com/KirkDiggler/undercover/internal/services/wordpair"
	"github.com/spf13/cobra"
)

func newPlayCommand() *cobra.Command {
	var (
		personaIDs     []string
		seats          int
		difficulty     string
		publicWord     string
		undercoverWord string
		maxRounds      int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Create a session and play it to the end",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(personaIDs) == 0 {
				listed, err := a.personaRepo.ListPersonas(ctx, &personaRepo.ListPersonasInput{})
				if err != nil {
					return err
				}
				if len(listed.Personas) < seats {
					return fmt.Errorf("only %d personas stored, run seed first", len(listed.Personas))
				}
				for _, p := range listed.Personas[:seats] {
					personaIDs = append(personaIDs, p.ID)
				}
			}

			input := &gameService.CreateSessionInput{
				PersonaIDs: personaIDs,
				Difficulty: models.Difficulty(difficulty),
				MaxRounds:  maxRounds,
			}
			if publicWord != "" || undercoverWord != "" {
				input.CustomPair = &wordpair.CustomPair{PublicWord: publicWord, UndercoverWord: undercoverWord}
			}

			created, err := a.game.CreateSession(ctx, input)
			if err != nil {
				return err
			}
			session := created.Session
			fmt.Fprintf(out, "Session %s: %d seats, words %s / %s\n", session.ID, len(session.Seats), session.PublicWord, session.UndercoverWord)

			for round := 1; round <= session.MaxRounds; round++ {
				played, err := a.game.PlayRound(ctx, &gameService.PlayRoundInput{SessionID: session.ID})
				if err != nil {
					if errors.Is(err, gameService.ErrVoteTallyEmpty) {
						fmt.Fprintln(out, "No valid votes this round, voting again")
						continue
					}
					return err
				}
				printRound(out, played)
				if played.Result.GameOver {
					fmt.Fprintf(out, "\nGame over, %s win. The saboteur was %s.\n", played.Result.Winner, session.Seats[session.SaboteurSeat].Name)
					return nil
				}
			}

			fmt.Fprintf(out, "\nReached %d rounds without a winner.\n", session.MaxRounds)
			return nil
		}),
	}

	cmd.Flags().StringSliceVar(&personaIDs, "personas", nil, "persona IDs in seat order")
	cmd.Flags().IntVar(&seats, "seats", 4, "number of stored personas to seat when --personas is empty")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringVar(&publicWord, "public-word", "", "custom civilian word")
	cmd.Flags().StringVar(&undercoverWord, "undercover-word", "", "custom saboteur word")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "round limit, defaults to the seat count")
	return cmd
}

func printRound(out io.Writer, played *gameService.PlayRoundOutput) {
	fmt.Fprintf(out, "\n== Round %d ==\n", played.Round)
	for _, d := range played.Descriptions {
		fmt.Fprintf(out, "%s: %s\n", d.SeatName, d.Text)
	}
	for _, v := range played.Votes {
		if !v.Valid() {
			fmt.Fprintf(out, "%s abstained (%q)\n", v.VoterName, v.Raw)
			continue
		}
		fmt.Fprintf(out, "%s -> %s: %s\n", v.VoterName, v.TargetName, v.Justification)
	}

	result := played.Result
	if result.TieBreak != nil {
		fmt.Fprintf(out, "Tie between seats %v broken by %s\n", result.TieBreak.Candidates, result.TieBreak.Policy)
	}
	fmt.Fprintf(out, "%s is eliminated: %s\n", result.EliminatedName, result.Speech)
}

func newSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session <id>",
		Short: "Show a session record",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			got, err := a.game.GetSession(cmd.Context(), &gameService.GetSessionInput{SessionID: args[0]})
			if err != nil {
				return err
			}

			s := got.Session
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session %s (%s, phase %s, round %d/%d)\n", s.ID, s.Status, s.Phase, s.CurrentRound, s.MaxRounds)
			for i, seat := range s.Seats {
				state := "active"
				if s.IsEliminated(i) {
					state = "eliminated"
				}
				fmt.Fprintf(out, "  %d %s [%s, %s]\n", i, seat.Name, s.RoleOf(i), state)
			}
			if s.Winner != models.WinnerNone {
				fmt.Fprintf(out, "Winner: %s\n", s.Winner)
			}
			return nil
		}),
	}
}

func newEliminateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminate <session-id> <seat>",
		Short: "Eliminate a seat directly",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			seat, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid seat %q: %w", args[1], err)
			}

			res, err := a.game.ManualEliminate(cmd.Context(), &gameService.ManualEliminateInput{SessionID: args[0], SeatIndex: seat})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyEliminated {
				fmt.Fprintf(out, "%s was already eliminated\n", res.EliminatedName)
			}
			fmt.Fprintf(out, "%s: %s\n", res.EliminatedName, res.Speech)
			if res.GameOver {
				fmt.Fprintf(out, "Game over, %s win\n", res.Winner)
			}
			return nil
		}),
	}
}

func newWordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the word library",
	}

	var listDifficulty string
	list := &cobra.Command{
		Use:   "list",
		Short: "List word pairs",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			listed, err := a.wordPairs.ListWordPairs(cmd.Context(), &wordpair.ListWordPairsInput{Difficulty: models.Difficulty(listDifficulty)})
			if err != nil {
				return err
			}
			for _, p := range listed.WordPairs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s / %s\t%s\n", p.ID, p.PublicWord, p.UndercoverWord, p.Difficulty)
			}
			return nil
		}),
	}
	list.Flags().StringVar(&listDifficulty, "difficulty", "", "only this difficulty")

	var addDifficulty string
	add := &cobra.Command{
		Use:   "add <public-word> <undercover-word>",
		Short: "Add a word pair",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			added, err := a.wordPairs.AddWordPair(cmd.Context(), &wordpair.AddWordPairInput{
				PublicWord:     args[0],
				UndercoverWord: args[1],
				Difficulty:     models.Difficulty(addDifficulty),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", added.WordPair.ID)
			return nil
		}),
	}
	add.Flags().StringVar(&addDifficulty, "difficulty", "", "easy, medium or hard")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a word pair",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			_, err := a.wordPairs.DeleteWordPair(cmd.Context(), &wordpair.DeleteWordPairInput{WordPairID: args[0]})
			return err
		}),
	}

	var (
		theme       string
		genDiff     string
		count       int
		saveResults bool
	)
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Ask the model for new word pairs",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			generated, err := a.wordPairs.GenerateWordPairs(ctx, &wordpair.GenerateWordPairsInput{
				Theme:      theme,
				Difficulty: models.Difficulty(genDiff),
				Count:      count,
			})
			if err != nil {
				return err
			}

			batch := make([]*wordpair.AddWordPairInput, 0, len(generated.WordPairs))
			for _, p := range generated.WordPairs {
				fmt.Fprintf(out, "%s / %s\t%s\n", p.PublicWord, p.UndercoverWord, p.Difficulty)
				batch = append(batch, &wordpair.AddWordPairInput{
					PublicWord:     p.PublicWord,
					UndercoverWord: p.UndercoverWord,
					Difficulty:     p.Difficulty,
				})
			}
			if !saveResults {
				return nil
			}

			saved, err := a.wordPairs.BatchAddWordPairs(ctx, &wordpair.BatchAddWordPairsInput{WordPairs: batch})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved %d, skipped %d\n", len(saved.Added), saved.Skipped)
			for _, rowErr := range saved.Errors {
				fmt.Fprintf(out, "  row %d: %s\n", rowErr.Row, rowErr.Message)
			}
			return nil
		}),
	}
	generate.Flags().StringVar(&theme, "theme", wordpair.DefaultTheme, "theme for the pairs")
	generate.Flags().StringVar(&genDiff, "difficulty", string(models.DifficultyMedium), "easy, medium or hard")
	generate.Flags().IntVar(&count, "count", wordpair.DefaultGenerateCount, "number of pairs")
	generate.Flags().BoolVar(&saveResults, "save", false, "store the generated pairs")

	cmd.AddCommand(list, add, del, generate)
	return cmd
}

func newPersonasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personas",
		Short: "Inspect personas",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored personas",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			listed, err := a.personaRepo.ListPersonas(cmd.Context(), &personaRepo.ListPersonasInput{})
			if err != nil {
				return err
			}
			for _, p := range listed.Personas {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, p.Name, strings.TrimSpace(p.Personality))
			}
			return nil
		}),
	})
	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the default personas and word pairs",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()

			personas, err := personaRepo.SeedDefaults(ctx, a.personaRepo)
			if err != nil {
				return err
			}

			words, err := a.wordPairs.SeedDefaults(ctx, &wordpair.SeedDefaultsInput{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d personas and %d word pairs\n", personas, words.Added)
			return nil
		}),
	}
}
