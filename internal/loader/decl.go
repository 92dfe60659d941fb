package loader

// TOML shapes for one API description file. Each file declares exactly one
// namespace; type references inside it may point anywhere, qualified or not.

type descriptionFile struct {
	Namespace    namespaceDecl  `toml:"namespace"`
	Aliases      []aliasDecl    `toml:"alias"`
	Enumerations []enumDecl     `toml:"enumeration"`
	Bitfields    []enumDecl     `toml:"bitfield"`
	Records      []recordDecl   `toml:"record"`
	Unions       []unionDecl    `toml:"union"`
	Callbacks    []functionDecl `toml:"callback"`
	Interfaces   []recordDecl   `toml:"interface"`
	Classes      []recordDecl   `toml:"class"`
	Constants    []constantDecl `toml:"constant"`
	Functions    []functionDecl `toml:"function"`
}

type namespaceDecl struct {
	Name string `toml:"name"`
}

type aliasDecl struct {
	Name        string `toml:"name"`
	CIdentifier string `toml:"c-identifier"`
	Type        string `toml:"type"`
}

type memberDecl struct {
	Name        string `toml:"name"`
	CIdentifier string `toml:"c-identifier"`
	Value       string `toml:"value"`
}

type enumDecl struct {
	Name      string         `toml:"name"`
	Members   []memberDecl   `toml:"member"`
	Functions []functionDecl `toml:"function"`
}

type recordDecl struct {
	Name      string         `toml:"name"`
	Functions []functionDecl `toml:"function"`
}

type fieldDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type unionDecl struct {
	Name      string         `toml:"name"`
	Fields    []fieldDecl    `toml:"field"`
	Functions []functionDecl `toml:"function"`
}

type paramDecl struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Transfer string `toml:"transfer"`
}

type functionDecl struct {
	Name        string      `toml:"name"`
	CIdentifier string      `toml:"c-identifier"`
	Parameters  []paramDecl `toml:"parameter"`
	Return      *paramDecl  `toml:"return"`
}

type constantDecl struct {
	Name  string `toml:"name"`
	Type  string `toml:"type"`
	Value string `toml:"value"`
}
