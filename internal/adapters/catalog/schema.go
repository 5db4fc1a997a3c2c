package catalog

// Manifest represents the structure of the assets.yaml file.
type Manifest struct {
	SourceRoot string     `yaml:"source_root"`
	Assets     []AssetDTO `yaml:"assets"`
}

// AssetDTO represents an asset declaration in the manifest.
type AssetDTO struct {
	Name       string   `yaml:"name"`
	Inputs     []string `yaml:"inputs"`
	Transforms []string `yaml:"transforms"`
	Output     string   `yaml:"output"`
}
