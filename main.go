package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
	"github.com/legionoffools/lofbot/config"
	db "github.com/legionoffools/lofbot/database"
	"github.com/legionoffools/lofbot/handlers"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to DB
	if err := db.Connect(settings.DatabasePath); err != nil {
		log.Fatal(err)
	}
	defer db.CloseDB()

	// Pending requests live in memory unless the bolt store was opted into
	var store approval.Store = approval.NewMemoryStore()
	if settings.PendingStore == config.PendingStoreBolt {
		store = db.NewPendingStore()
	}
	handlers.Init(settings, store)

	ses, err := discordgo.New("Bot " + settings.Token)
	if err != nil {
		log.Fatal(err)
	}
	ses.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	// Event handlers
	ses.AddHandler(handlers.Ready)
	ses.AddHandler(handlers.GuildCreate)
	ses.AddHandler(handlers.InteractionCreate)
	ses.AddHandler(handlers.MessageCreate(handlers.NewActionRouter()))

	if err := ses.Open(); err != nil {
		log.Fatal(err)
	}
	defer ses.Close()

	registerCommands(ses, settings)

	// Run until SIGINT/SIGTERM
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// registerCommands - register /setup, guild-scoped when a single guild is
// allowed so the command shows up without the global propagation delay
func registerCommands(ses *discordgo.Session, settings config.Settings) {
	adminOnly := int64(0)
	setup := &discordgo.ApplicationCommand{
		Name:                     "setup",
		Description:              "Reset this server and create the Legion of Fools structure",
		DefaultMemberPermissions: &adminOnly,
	}

	guildID := ""
	if len(settings.AllowedGuilds) == 1 {
		guildID = settings.AllowedGuilds[0]
	}

	if _, err := ses.ApplicationCommandCreate(ses.State.User.ID, guildID, setup); err != nil {
		log.Printf("failed to register /setup: %v", err)
	}
}
