package command

// Meta supplies the Command metadata methods through embedding, so command
// types only declare their gates once, as data.
type Meta struct {
	CommandName string
	Desc        string
	Cat         string
	Guild       bool
	Developer   bool
	Voter       bool
	UserPerms   int64
	BotPerms    int64
}

func (m Meta) Name() string           { return m.CommandName }
func (m Meta) Category() string       { return m.Cat }
func (m Meta) Description() string    { return m.Desc }
func (m Meta) GuildOnly() bool        { return m.Guild }
func (m Meta) DeveloperOnly() bool    { return m.Developer }
func (m Meta) VoterOnly() bool        { return m.Voter }
func (m Meta) UserPermissions() int64 { return m.UserPerms }
func (m Meta) BotPermissions() int64  { return m.BotPerms }
