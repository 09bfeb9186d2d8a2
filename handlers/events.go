package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"
)

// Ready - announce the session and enforce the guild allow-list
func Ready(s *discordgo.Session, e *discordgo.Ready) {
	color.Cyan("⚔️  LOF bot online as %v", e.User.String())
	color.Green("Serving %v guild(s)", len(e.Guilds))

	if len(settings.AllowedGuilds) == 0 {
		return
	}
	for _, g := range e.Guilds {
		if !settings.GuildAllowed(g.ID) {
			log.Printf("leaving unauthorized guild %v", g.ID)
			if err := s.GuildLeave(g.ID); err != nil {
				log.Printf("failed to leave guild %v: %v", g.ID, err)
			}
		}
	}
}

// GuildCreate - leave guilds the bot was invited to outside the allow-list
func GuildCreate(s *discordgo.Session, e *discordgo.GuildCreate) {
	if settings.GuildAllowed(e.ID) {
		log.Printf("joined guild %v (%v)", e.Name, e.ID)
		return
	}
	log.Printf("leaving unauthorized guild %v (%v)", e.Name, e.ID)
	if err := s.GuildLeave(e.ID); err != nil {
		log.Printf("failed to leave guild %v: %v", e.ID, err)
	}
}
