package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/midiin"
	"github.com/cwbudde/algo-bass/params"
	"github.com/cwbudde/algo-bass/preset"
)

// userFile is the file save_preset writes inside the preset directory.
const userFile = "user" + preset.Ext

// control exposes the running synth as MCP tools.
type control struct {
	bank   *preset.Bank
	reg    *params.Registry
	queue  *midiin.Queue
	synth  *synth
	dir    string
	logger *slog.Logger
}

func (c *control) serve() error {
	s := server.NewMCPServer(
		"algo-bass",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("bass_list-presets",
		mcp.WithDescription("Lists every preset with its index and category."),
	), c.listPresets)

	s.AddTool(mcp.NewTool("bass_load-preset",
		mcp.WithDescription("Loads a preset by name. Arpeggiator settings and master gain are kept."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Preset name, case-insensitive.")),
	), c.loadPreset)

	s.AddTool(mcp.NewTool("bass_save-preset",
		mcp.WithDescription("Stores the current parameters as a user preset."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new user preset.")),
	), c.savePreset)

	s.AddTool(mcp.NewTool("bass_list-params",
		mcp.WithDescription("Returns all parameter values as JSON."),
	), c.listParams)

	s.AddTool(mcp.NewTool("bass_get-param",
		mcp.WithDescription("Returns one parameter value."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter id, e.g. filter_cutoff.")),
	), c.getParam)

	s.AddTool(mcp.NewTool("bass_set-param",
		mcp.WithDescription("Sets one parameter. The value is clamped to the parameter range."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter id, e.g. filter_cutoff.")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("New value in the parameter's units.")),
	), c.setParam)

	s.AddTool(mcp.NewTool("bass_note-on",
		mcp.WithDescription("Starts a note."),
		mcp.WithNumber("note", mcp.Required(), mcp.Description("MIDI note 0-127.")),
		mcp.WithNumber("velocity", mcp.Description("Velocity in (0, 1]; defaults to 1.")),
	), c.noteOn)

	s.AddTool(mcp.NewTool("bass_note-off",
		mcp.WithDescription("Releases a note."),
		mcp.WithNumber("note", mcp.Required(), mcp.Description("MIDI note 0-127.")),
	), c.noteOff)

	s.AddTool(mcp.NewTool("bass_set-tempo",
		mcp.WithDescription("Sets the tempo the arpeggiator follows."),
		mcp.WithNumber("bpm", mcp.Required(), mcp.Description("Beats per minute.")),
	), c.setTempo)

	c.logger.Info("serving MCP on stdio")
	return server.ServeStdio(s)
}

func (c *control) listPresets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	current := c.bank.Index()
	for i, p := range c.bank.List() {
		mark := " "
		if i == current {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %2d  %-20s %s\n", mark, i, p.Name, p.Category)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *control) loadPreset(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := c.bank.SelectName(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c.reg.Apply(p.ApplyTo(c.reg.Snapshot()))
	c.logger.Info("preset loaded", "name", p.Name, "source", "mcp")
	return mcp.NewToolResultText(fmt.Sprintf("Loaded %q (%s).", p.Name, p.Category)), nil
}

func (c *control) savePreset(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	i, err := c.bank.Add(preset.Preset{Name: name, Params: c.reg.Snapshot()})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c.dir == "" {
		return mcp.NewToolResultText(fmt.Sprintf("Stored %q at index %d (not persisted).", name, i)), nil
	}
	path := filepath.Join(c.dir, userFile)
	if err := c.bank.SaveFile(path); err != nil {
		return nil, fmt.Errorf("save presets: %w", err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Stored %q at index %d in %s.", name, i, path)), nil
}

func (c *control) listParams(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := c.reg.Snapshot()
	data, err := json.MarshalIndent(&snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (c *control) getParam(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := c.reg.Get(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %g", name, v)), nil
}

func (c *control) setParam(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stored, err := c.reg.Set(name, value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c.logger.Debug("parameter set", "name", name, "value", stored, "source", "mcp")
	return mcp.NewToolResultText(fmt.Sprintf("%s = %g", name, stored)), nil
}

func (c *control) noteOn(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, err := requireNote(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	vel := req.GetFloat("velocity", 1)
	if !c.queue.Push(bass.NoteOnEvent(note, vel)) {
		return mcp.NewToolResultError("event queue full"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Note %d on.", note)), nil
}

func (c *control) noteOff(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, err := requireNote(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !c.queue.Push(bass.NoteOffEvent(note)) {
		return mcp.NewToolResultError("event queue full"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Note %d off.", note)), nil
}

func (c *control) setTempo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bpm, err := req.RequireFloat("bpm")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return mcp.NewToolResultError("bpm must be > 0"), nil
	}
	c.synth.setTempo(bpm)
	return mcp.NewToolResultText(fmt.Sprintf("Tempo %g BPM.", bpm)), nil
}

func requireNote(req mcp.CallToolRequest) (uint8, error) {
	n, err := req.RequireInt("note")
	if err != nil {
		return 0, err
	}
	if n < 0 || n > bass.MaxNote {
		return 0, fmt.Errorf("note %d out of range 0-%d", n, bass.MaxNote)
	}
	return uint8(n), nil
}
