package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nuagehq/mediagate/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	modelFlag := flag.String("model", "", "model id")
	modeFlag := flag.String("mode", "speech", "speech, dialog, music or sound")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	client := client.New(*urlFlag, options...)

	model := *modelFlag

	if model == "" {
		val, err := selectModel(ctx, client)

		if err != nil {
			panic(err)
		}

		model = val
	}

	switch strings.ToLower(*modeFlag) {
	case "dialog":
		dialog(ctx, client, model)

	case "music":
		music(ctx, client, model)

	case "sound":
		sound(ctx, client, model)

	default:
		speech(ctx, client, model)
	}
}

func selectModel(ctx context.Context, client *client.Client) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

	models, err := client.Models.List(ctx)

	if err != nil {
		return "", err
	}

	sort.SliceStable(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})

	for i, m := range models {
		output.WriteString(fmt.Sprintf("%2d) ", i+1))
		output.WriteString(m.ID)
		output.WriteString("\n")
	}

	output.WriteString(" >  ")
	sel, err := reader.ReadString('\n')

	if err != nil {
		return "", err
	}

	idx, err := strconv.Atoi(strings.TrimSpace(sel))

	if err != nil {
		return "", err
	}

	output.WriteString("\n")

	return models[idx-1].ID, nil
}

func speech(ctx context.Context, c *client.Client, model string) {
	prompt(func(input string) error {
		synthesis, err := c.Syntheses.New(ctx, client.SynthesizeRequest{
			Model: model,

			Input: input,
		})

		if err != nil {
			return err
		}

		return save(synthesis.Content, synthesis.ContentType)
	})
}

func dialog(ctx context.Context, c *client.Client, model string) {
	prompt(func(input string) error {
		var turns []client.DialogTurn

		for _, line := range strings.Split(input, ";") {
			voice, text, ok := strings.Cut(line, ":")

			if !ok {
				return fmt.Errorf("expected voice:text, got %q", line)
			}

			turns = append(turns, client.DialogTurn{
				Voice: strings.TrimSpace(voice),
				Text:  strings.TrimSpace(text),
			})
		}

		synthesis, err := c.Dialogs.New(ctx, client.DialogRequest{
			Model: model,

			Turns: turns,
		})

		if err != nil {
			return err
		}

		return save(synthesis.Content, synthesis.ContentType)
	})
}

func music(ctx context.Context, c *client.Client, model string) {
	prompt(func(input string) error {
		composition, err := c.Music.New(ctx, client.MusicRequest{
			Model: model,

			Prompt: input,
		})

		if err != nil {
			return err
		}

		return save(composition.Content, composition.ContentType)
	})
}

func sound(ctx context.Context, c *client.Client, model string) {
	prompt(func(input string) error {
		sound, err := c.Sounds.New(ctx, client.SoundRequest{
			Model: model,

			Prompt: input,
		})

		if err != nil {
			return err
		}

		return save(sound.Content, sound.ContentType)
	})
}

func prompt(handler func(input string) error) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			panic(err)
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue
		}

		if err := handler(input); err != nil {
			output.WriteString(err.Error() + "\n")
		}

		output.WriteString("\n")
	}
}

func save(content []byte, contentType string) error {
	name := uuid.New().String()

	if ext, _ := mime.ExtensionsByType(contentType); len(ext) > 0 {
		name += ext[0]
	} else {
		name += ".mp3"
	}

	if err := os.WriteFile(name, content, 0600); err != nil {
		return err
	}

	fmt.Println("Saved: " + name)

	return nil
}
