package handlers

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/config"
)

// NewActionRouter - build the owo command router with every action bound
func NewActionRouter() *exrouter.Route {
	router := exrouter.New()

	router.On("help", ActionHelpHandler).Desc("List all action commands")
	router.On("actions", ActionHelpHandler).Desc("List all action commands")

	for name := range config.Actions {
		name := name
		router.On(name, func(ctx *exrouter.Context) {
			runAction(ctx, name)
		}).Desc(fmt.Sprintf("%v someone", name))
	}
	return router
}

// MessageCreate - route guild messages into the action router
func MessageCreate(router *exrouter.Route) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore bots, DMs and guilds outside the allow-list
		if m.Author.Bot || m.GuildID == "" {
			return
		}
		if !settings.GuildAllowed(m.GuildID) {
			return
		}

		// Unknown subcommands fall through silently, they might belong
		// to another bot sharing the prefix
		router.FindAndExecute(s, config.ActionPrefix+" ", s.State.User.ID, m.Message)
	}
}

func runAction(ctx *exrouter.Context, name string) {
	action := config.Actions[name]

	// Require a mention, and not a self-mention
	if len(ctx.Msg.Mentions) == 0 {
		replyDel(ctx, fmt.Sprintf("You need to mention someone! Usage: `%v %v @user`", config.ActionPrefix, name), 15)
		return
	}
	target := ctx.Msg.Mentions[0]
	if target.ID == ctx.Msg.Author.ID {
		replyDel(ctx, fmt.Sprintf("You can't %v yourself! Mention someone else.", name), 15)
		return
	}

	msg := action.Messages[rand.Intn(len(action.Messages))]
	rendered := action.RenderMessage(msg,
		fmt.Sprintf("**%v**", displayName(ctx.Msg)),
		fmt.Sprintf("**%v**", target.Username))

	color := action.Color
	if color == 0 {
		color = config.ActionFallbackColor
	}
	embed := &discordgo.MessageEmbed{
		Color:       color,
		Description: fmt.Sprintf("\n%v\n", rendered),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    fmt.Sprintf("%v %v!", action.Emoji, titleCase(name)),
			IconURL: ctx.Msg.Author.AvatarURL(""),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    fmt.Sprintf("%v %v @user", config.ActionPrefix, name),
			IconURL: target.AvatarURL(""),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	send := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}

	// Attach a local GIF when one exists for this action
	if gif := randomGif(action.Category, name); gif != "" {
		f, err := os.Open(gif)
		if err != nil {
			log.Printf("failed to open gif %v: %v", gif, err)
		} else {
			defer f.Close()
			attachName := name + ".gif"
			embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + attachName}
			send.Files = []*discordgo.File{{Name: attachName, Reader: f}}
		}
	}

	if _, err := ctx.Ses.ChannelMessageSendComplex(ctx.Msg.ChannelID, send); err != nil {
		log.Printf("failed to send %v action: %v", name, err)
	}
}

// randomGif picks a random .gif under <gifs>/<category>/<action>/, empty
// string when the directory is missing or holds none
func randomGif(category, name string) string {
	dir := filepath.Join(settings.GifPath, category, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var gifs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".gif") {
			gifs = append(gifs, e.Name())
		}
	}
	if len(gifs) == 0 {
		return ""
	}
	return filepath.Join(dir, gifs[rand.Intn(len(gifs))])
}

// ActionHelpHandler - render the categorized action list
func ActionHelpHandler(ctx *exrouter.Context) {
	byCategory := make(map[string][]string)
	for name, a := range config.Actions {
		byCategory[a.Category] = append(byCategory[a.Category], name)
	}

	var fields []*discordgo.MessageEmbedField
	for _, cat := range config.ActionCategories {
		names := byCategory[cat]
		sort.Strings(names)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  config.ActionCategoryHeaders[cat],
			Value: formatActionRows(names),
		})
	}

	embed := &discordgo.MessageEmbed{
		Color: 0xFF69B4,
		Title: "✨ Action Commands",
		Description: fmt.Sprintf("**How to use:** `%v <action> @user`\n**Example:** `%v slap @someone`\n━━━━━━━━━━━━━━━━━━━━━━",
			config.ActionPrefix, config.ActionPrefix),
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%v actions · %v help", len(config.Actions), config.ActionPrefix),
		},
	}

	_, err := ctx.Ses.ChannelMessageSendEmbed(ctx.Msg.ChannelID, embed)
	if err != nil {
		log.Print(err)
	}
}

// formatActionRows - five backticked names per row, " · " separated
func formatActionRows(names []string) string {
	if len(names) == 0 {
		return "*None*"
	}
	var rows []string
	for i := 0; i < len(names); i += 5 {
		end := i + 5
		if end > len(names) {
			end = len(names)
		}
		row := make([]string, 0, 5)
		for _, n := range names[i:end] {
			row = append(row, "`"+n+"`")
		}
		rows = append(rows, strings.Join(row, " · "))
	}
	return strings.Join(rows, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	return m.Author.Username
}
