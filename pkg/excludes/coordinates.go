package excludes

// ModuleID identifies a module by group and name. It is a query value
// passed to a Filter; filters never hold on to it.
type ModuleID struct {
	Group string
	Name  string
}

func (id ModuleID) String() string {
	return id.Group + ":" + id.Name
}

// ArtifactID extends a module query to a single artifact of that module.
type ArtifactID struct {
	Name      string
	Type      string
	Extension string
}

func (a ArtifactID) String() string {
	return a.Name + ":" + a.Type + ":" + a.Extension
}
