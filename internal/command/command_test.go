package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeCommand struct {
	name string
	runs *[]string
	tag  string
}

func (f *fakeCommand) Name() string           { return f.name }
func (f *fakeCommand) Description() string    { return "fake" }
func (f *fakeCommand) GuildOnly() bool        { return false }
func (f *fakeCommand) DeveloperOnly() bool    { return false }
func (f *fakeCommand) VoterOnly() bool        { return false }
func (f *fakeCommand) UserPermissions() int64 { return 0 }
func (f *fakeCommand) BotPermissions() int64  { return 0 }

func (f *fakeCommand) Run(ctx *Context) error {
	if f.runs != nil {
		*f.runs = append(*f.runs, "run")
	}
	return nil
}

func (f *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: f.name, Description: "fake"}
}

func TestRegistryFirstRegistrationWins(t *testing.T) {
	r := NewRegistry()
	first := &fakeCommand{name: "ping", tag: "first"}
	second := &fakeCommand{name: "ping", tag: "second"}

	r.Register(first)
	r.Register(second)

	got := r.Get("ping")
	if got == nil {
		t.Fatal("expected command")
	}
	if fc, ok := got.(*fakeCommand); !ok || fc.tag != "first" {
		t.Fatalf("expected first-registered instance, got %+v", got)
	}
	if len(r.All()) != 1 {
		t.Fatalf("expected 1 command, got %d", len(r.All()))
	}
}

func TestRegistryGetMissReturnsNil(t *testing.T) {
	r := NewRegistry()
	if got := r.Get("nope"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRegistryNamesAreCaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeCommand{name: "ping"})
	if got := r.Get("Ping"); got != nil {
		t.Fatal("lookup must be case-sensitive")
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"upload", "copy", "ping"} {
		r.Register(&fakeCommand{name: n})
	}
	all := r.All()
	want := []string{"copy", "ping", "upload"}
	for i, c := range all {
		if c.Name() != want[i] {
			t.Fatalf("expected %v, got %v at %d", want, c.Name(), i)
		}
	}
}

func TestMissing(t *testing.T) {
	const (
		a = int64(1) << 3
		b = int64(1) << 5
		c = int64(1) << 7
	)

	if got := Missing(a|b, a|b|c); got != 0 {
		t.Fatalf("no bits should be missing, got %b", got)
	}
	if got := Missing(a|b, a); got != b {
		t.Fatalf("expected %b missing, got %b", b, got)
	}
	if got := Missing(0, 0); got != 0 {
		t.Fatalf("empty required: got %b", got)
	}
	// Asymmetry: extra given bits never count as missing.
	if got := Missing(a, a|b|c); got != 0 {
		t.Fatalf("extra given bits should not matter, got %b", got)
	}
}

// Missing is pure: identical inputs give identical results, and zero iff
// required is a subset of given.
func TestMissingPurityAndSubset(t *testing.T) {
	cases := [][2]int64{{0, 0}, {5, 7}, {7, 5}, {1 << 30, 0}, {0b1010, 0b1000}}
	for _, c := range cases {
		first := Missing(c[0], c[1])
		second := Missing(c[0], c[1])
		if first != second {
			t.Fatalf("Missing(%b,%b) not pure", c[0], c[1])
		}
		subset := c[0]&c[1] == c[0]
		if (first == 0) != subset {
			t.Fatalf("Missing(%b,%b)=%b disagrees with subset=%v", c[0], c[1], first, subset)
		}
	}
}

func TestFormatPermissions(t *testing.T) {
	got := FormatPermissions(discordgo.PermissionManageEmojis)
	if got != "`Manage Emojis and Stickers`" {
		t.Fatalf("unexpected: %q", got)
	}
	// Unknown bits fall back to hex.
	got = FormatPermissions(int64(1) << 55)
	if got != "`0x80000000000000`" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestApplyMiddlewaresOrder(t *testing.T) {
	var order []string
	cmd := &fakeCommand{name: "x", runs: &order}

	record := func(tag string) Middleware {
		return func(inner Command) Command {
			return &wrappedCommand{Command: inner, wrap: func(ctx *Context) error {
				order = append(order, tag)
				return inner.Run(ctx)
			}}
		}
	}

	// Last middleware in the list runs first.
	wrapped := ApplyMiddlewares(cmd, record("inner"), record("outer"))
	if err := wrapped.Run(nil); err != nil {
		t.Fatal(err)
	}

	want := []string{"outer", "inner", "run"}
	if len(order) != len(want) {
		t.Fatalf("got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestWrappedCommandForwardsSlashDefinition(t *testing.T) {
	cmd := &fakeCommand{name: "x"}
	wrapped := ApplyMiddlewares(cmd, func(inner Command) Command {
		return &wrappedCommand{Command: inner, wrap: inner.Run}
	})

	sp, ok := wrapped.(SlashProvider)
	if !ok {
		t.Fatal("wrapped command must remain a SlashProvider")
	}
	if def := sp.SlashDefinition(); def == nil || def.Name != "x" {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestOptionResolver(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "single",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "emote", Type: discordgo.ApplicationCommandOptionString, Value: "<:x:123456789012345678>"},
			},
		},
	}
	r := &OptionResolver{opts: opts}

	sub, ok := r.Subcommand("single")
	if !ok {
		t.Fatal("expected subcommand")
	}
	if got := sub.String("emote"); got != "<:x:123456789012345678>" {
		t.Fatalf("unexpected option value: %q", got)
	}
	if _, ok := r.Subcommand("multiple"); ok {
		t.Fatal("unexpected subcommand match")
	}
	if got := sub.String("missing"); got != "" {
		t.Fatalf("missing option should be empty, got %q", got)
	}
}
