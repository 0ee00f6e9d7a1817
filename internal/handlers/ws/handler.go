// Package ws is the browser-facing gateway: one websocket per client, JSON
// command envelopes in, JSON responses and battle pushes out.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	abilityorch "github.com/tavernkeep/companion-api/internal/orchestrators/ability"
	battleorch "github.com/tavernkeep/companion-api/internal/orchestrators/battle"
	combatorch "github.com/tavernkeep/companion-api/internal/orchestrators/combat"
	missionorch "github.com/tavernkeep/companion-api/internal/orchestrators/mission"
	profileorch "github.com/tavernkeep/companion-api/internal/orchestrators/profile"
)

// Config holds the dependencies for the gateway handler
type Config struct {
	Profiles  profileorch.Service
	Abilities abilityorch.Service
	Combat    combatorch.Service
	Missions  missionorch.Service
	Battles   battleorch.Service
	Hub       *Hub
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	if c.Abilities == nil {
		vb.RequiredField("Abilities")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Missions == nil {
		vb.RequiredField("Missions")
	}
	if c.Battles == nil {
		vb.RequiredField("Battles")
	}
	if c.Hub == nil {
		vb.RequiredField("Hub")
	}

	return vb.Build()
}

// Handler accepts websocket connections and dispatches their commands to
// the orchestrators
type Handler struct {
	profiles  profileorch.Service
	abilities abilityorch.Service
	combat    combatorch.Service
	missions  missionorch.Service
	battles   battleorch.Service
	hub       *Hub
}

// NewHandler creates a gateway handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		profiles:  cfg.Profiles,
		abilities: cfg.Abilities,
		combat:    cfg.Combat,
		missions:  cfg.Missions,
		battles:   cfg.Battles,
		hub:       cfg.Hub,
	}, nil
}

// ServeHTTP upgrades the request and runs the connection's command loop
// until the client goes away
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Browser clients connect from the app's own origin; the
		// deployment fronts this with its own origin policy
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept websocket", "error", err)
		return
	}

	h.hub.register(conn)
	defer func() {
		h.hub.unregister(conn)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	slog.DebugContext(ctx, "gateway connection opened", "remote", r.RemoteAddr)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			slog.DebugContext(ctx, "gateway connection closed", "error", err)
			return
		}

		resp := h.dispatch(ctx, data)
		payload, err := json.Marshal(resp)
		if err != nil {
			slog.ErrorContext(ctx, "failed to marshal response", "action", resp.Action, "error", err)
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			slog.DebugContext(ctx, "gateway connection closed during write", "error", err)
			return
		}
	}
}

// dispatch maps one command envelope to an orchestrator call. Failures
// come back inside the envelope; the connection stays up.
func (h *Handler) dispatch(ctx context.Context, data []byte) *Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return errResponse(&req, errors.InvalidArgument("malformed request envelope"))
	}

	result, err := h.call(ctx, &req)
	if err != nil {
		if errors.GetCode(err) == errors.CodeInternal {
			slog.ErrorContext(ctx, "command failed", "action", req.Action, "error", err)
		}
		return errResponse(&req, err)
	}
	return okResponse(&req, result)
}

func decode(req *Request, v any) error {
	if len(req.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Data, v); err != nil {
		return errors.InvalidArgumentf("malformed data for %s", req.Action)
	}
	return nil
}

func (h *Handler) call(ctx context.Context, req *Request) (any, error) {
	switch req.Action {
	case "profile.signup":
		var p struct {
			UserID   string `json:"user_id"`
			Email    string `json:"email"`
			Username string `json:"username"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.Signup(ctx, &profileorch.SignupInput{
			UserID: p.UserID, Email: p.Email, Username: p.Username,
		})

	case "profile.get":
		var p struct {
			ID string `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.GetProfile(ctx, &profileorch.GetProfileInput{ID: p.ID})

	case "profile.list":
		return h.profiles.ListProfiles(ctx, &profileorch.ListProfilesInput{})

	case "profile.update_stats":
		var p struct {
			ProfileID         string `json:"profile_id"`
			CurrentHP         *int32 `json:"current_hp"`
			TotalHP           *int32 `json:"total_hp"`
			Attack            *int32 `json:"attack"`
			Defense           *int32 `json:"defense"`
			SpecialAttack     *int32 `json:"special_attack"`
			SpecialDefense    *int32 `json:"special_defense"`
			Speed             *int32 `json:"speed"`
			CurrentExperience *int32 `json:"current_experience"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.UpdateStats(ctx, &profileorch.UpdateStatsInput{
			ProfileID:         p.ProfileID,
			CurrentHP:         p.CurrentHP,
			TotalHP:           p.TotalHP,
			Attack:            p.Attack,
			Defense:           p.Defense,
			SpecialAttack:     p.SpecialAttack,
			SpecialDefense:    p.SpecialDefense,
			Speed:             p.Speed,
			CurrentExperience: p.CurrentExperience,
		})

	case "profile.update":
		var p struct {
			Profile *entities.Profile `json:"profile"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.UpdateProfile(ctx, &profileorch.UpdateProfileInput{Profile: p.Profile})

	case "profile.delete_user":
		var p struct {
			UserID string `json:"user_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.DeleteUser(ctx, &profileorch.DeleteUserInput{UserID: p.UserID})

	case "user.list":
		return h.profiles.ListUsers(ctx, &profileorch.ListUsersInput{})

	case "item.create":
		var p struct {
			ProfileID   string `json:"profile_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Quantity    int32  `json:"quantity"`
			Value       int32  `json:"value"`
			ImageURL    string `json:"image_url"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.CreateItem(ctx, &profileorch.CreateItemInput{
			ProfileID:   p.ProfileID,
			Name:        p.Name,
			Description: p.Description,
			Quantity:    p.Quantity,
			Value:       p.Value,
			ImageURL:    p.ImageURL,
		})

	case "item.list":
		var p struct {
			ProfileID string `json:"profile_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.ListItems(ctx, &profileorch.ListItemsInput{ProfileID: p.ProfileID})

	case "item.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.DeleteItem(ctx, &profileorch.DeleteItemInput{ItemID: p.ID})

	case "npc.create":
		var p struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.CreateNPC(ctx, &profileorch.CreateNPCInput{
			Name: p.Name, Description: p.Description, ImageURL: p.ImageURL,
		})

	case "npc.update":
		var p struct {
			NPC *entities.NPC `json:"npc"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.UpdateNPC(ctx, &profileorch.UpdateNPCInput{NPC: p.NPC})

	case "npc.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.profiles.DeleteNPC(ctx, &profileorch.DeleteNPCInput{ID: p.ID})

	case "npc.list":
		return h.profiles.ListNPCs(ctx, &profileorch.ListNPCsInput{})

	case "ability.list_eligible":
		var p struct {
			ProfileID string `json:"profile_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.abilities.ListEligible(ctx, &abilityorch.ListEligibleInput{ProfileID: p.ProfileID})

	case "ability.list_usable":
		var p struct {
			ProfileID string `json:"profile_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.abilities.ListUsable(ctx, &abilityorch.ListUsableInput{ProfileID: p.ProfileID})

	case "ability.increment":
		var p struct {
			ProfileID string `json:"profile_id"`
			AbilityID string `json:"hability_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.abilities.IncrementUses(ctx, &abilityorch.IncrementUsesInput{
			ProfileID: p.ProfileID, AbilityID: p.AbilityID,
		})

	case "ability.decrement":
		var p struct {
			ProfileID string `json:"profile_id"`
			AbilityID string `json:"hability_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.abilities.DecrementUses(ctx, &abilityorch.DecrementUsesInput{
			ProfileID: p.ProfileID, AbilityID: p.AbilityID,
		})

	case "ability.set_grants":
		var p struct {
			AbilityID  string   `json:"hability_id"`
			ProfileIDs []string `json:"profile_ids"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.abilities.SetGrants(ctx, &abilityorch.SetGrantsInput{
			AbilityID: p.AbilityID, ProfileIDs: p.ProfileIDs,
		})

	case "combat.resolve":
		var p struct {
			ProfileID string `json:"profile_id"`
			AbilityID string `json:"hability_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.combat.ResolveAttack(ctx, &combatorch.ResolveAttackInput{
			ProfileID: p.ProfileID, AbilityID: p.AbilityID,
		})

	case "mission.create":
		var p struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Status      string `json:"status"`
			Difficulty  string `json:"difficulty"`
			RewardXP    int32  `json:"reward_xp"`
			RewardGold  int32  `json:"reward_gold"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.CreateMission(ctx, &missionorch.CreateMissionInput{
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
			Difficulty:  p.Difficulty,
			RewardXP:    p.RewardXP,
			RewardGold:  p.RewardGold,
		})

	case "mission.get":
		var p struct {
			ID string `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.GetMission(ctx, &missionorch.GetMissionInput{ID: p.ID})

	case "mission.update":
		var p struct {
			Mission *entities.Mission `json:"mission"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.UpdateMission(ctx, &missionorch.UpdateMissionInput{Mission: p.Mission})

	case "mission.list":
		return h.missions.ListMissions(ctx, &missionorch.ListMissionsInput{})

	case "mission.delete":
		var p struct {
			ID string `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.DeleteMission(ctx, &missionorch.DeleteMissionInput{ID: p.ID})

	case "mission.assign":
		var p struct {
			MissionID string `json:"mission_id"`
			ProfileID string `json:"profile_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.AssignMission(ctx, &missionorch.AssignMissionInput{
			MissionID: p.MissionID, ProfileID: p.ProfileID,
		})

	case "mission.unassign":
		var p struct {
			MissionID string `json:"mission_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.missions.UnassignMission(ctx, &missionorch.UnassignMissionInput{MissionID: p.MissionID})

	case "enemy.create":
		var p struct {
			Name        string `json:"name"`
			Level       int32  `json:"level"`
			Description string `json:"description"`
			CurrentHP   int32  `json:"current_hp"`
			TotalHP     int32  `json:"total_hp"`
			IsBoss      bool   `json:"is_boss"`
			ImageURL    string `json:"image_url"`
			Defense     *int32 `json:"defense"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.battles.CreateEnemy(ctx, &battleorch.CreateEnemyInput{
			Name:        p.Name,
			Level:       p.Level,
			Description: p.Description,
			CurrentHP:   p.CurrentHP,
			TotalHP:     p.TotalHP,
			IsBoss:      p.IsBoss,
			ImageURL:    p.ImageURL,
			Defense:     p.Defense,
		})

	case "enemy.update":
		var p struct {
			Enemy *entities.Enemy `json:"enemy"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.battles.UpdateEnemy(ctx, &battleorch.UpdateEnemyInput{Enemy: p.Enemy})

	case "enemy.delete":
		var p struct {
			ID string `json:"id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.battles.DeleteEnemy(ctx, &battleorch.DeleteEnemyInput{ID: p.ID})

	case "enemy.list":
		return h.battles.ListEnemies(ctx, &battleorch.ListEnemiesInput{})

	case "battle.stage":
		var p struct {
			EnemyID string `json:"enemy_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.battles.StageEnemy(ctx, &battleorch.StageEnemyInput{EnemyID: p.EnemyID})

	case "battle.unstage":
		var p struct {
			EnemyID string `json:"enemy_id"`
		}
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.battles.UnstageEnemy(ctx, &battleorch.UnstageEnemyInput{EnemyID: p.EnemyID})

	case "battle.roster":
		return h.battles.ListRoster(ctx, &battleorch.ListRosterInput{})

	case "battle.clear":
		return h.battles.ClearRoster(ctx, &battleorch.ClearRosterInput{})

	case "battle.start":
		return h.battles.StartBattle(ctx, &battleorch.StartBattleInput{})

	default:
		return nil, errors.InvalidArgumentf("unknown action %q", req.Action)
	}
}
