package systems

import (
	"log"

	"github.com/automoto/jump/archetypes"
	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/config/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the host toggles: debug overlay, autopilot and quit.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	in := getOrCreateInput(ecs)

	if GetAction(in, input.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(in, input.ActionAutoplay).JustPressed {
		settings.Autoplay = !settings.Autoplay
		if entry, ok := components.Session.First(ecs.World); ok {
			components.Session.Get(entry).Bot.Reset()
		}
		log.Printf("Autopilot enabled: %v", settings.Autoplay)
	}
	if GetAction(in, input.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from the debug config
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:    cfg.Debug.ShowSpace,
			Autoplay: cfg.Debug.Autoplay,
		})
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the player asked to leave.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}
