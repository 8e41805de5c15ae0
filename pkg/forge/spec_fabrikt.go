package forge

import (
	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/fabrikt"
	"k8s.io/utils/ptr"
)

const (
	// DefaultOutputDirectory is the output directory of targets that set none.
	DefaultOutputDirectory = "build/generated/fabrikt"
	// DefaultSourcesPath is the sources path fabrikt uses when none is passed.
	DefaultSourcesPath = "src/main/kotlin"
	// DefaultResourcesPath is the resources path fabrikt uses when none is passed.
	DefaultResourcesPath = "src/main/resources"
	// DefaultValidationLibrary is the validation library fabrikt uses when none is passed.
	DefaultValidationLibrary = fabrikt.ValidationLibraryJakarta
	// DefaultClientTarget is the client target of targets that set none.
	DefaultClientTarget = fabrikt.ClientTargetOkHttp
	// DefaultControllerTarget is the controller target of targets that set none.
	DefaultControllerTarget = fabrikt.ControllerTargetSpring
)

// FabriktConfig holds the configuration for generating Kotlin code with fabrikt.
type FabriktConfig struct {
	// Executable is the command running fabrikt, e.g. "java -jar fabrikt.jar".
	// The FABRIKT_EXECUTABLE environment variable takes precedence.
	Executable string `json:"executable,omitempty"`
	// EnvFile is an env file whose variables are passed to the fabrikt process.
	EnvFile string `json:"envFile,omitempty"`
	// Defaults holds the default values of the generation targets.
	Defaults FabriktDefaults `json:"defaults"`
	// Generate is the list of generation targets. Names must be unique.
	Generate []GenerateSpec `json:"generate"`
}

// FabriktDefaults holds the default values of the generation targets.
type FabriktDefaults struct {
	// OutputDirectory overrides DefaultOutputDirectory.
	OutputDirectory string `json:"outputDirectory,omitempty"`
}

// GenerateSpec holds the configuration of a single generation target.
type GenerateSpec struct {
	// Name identifies the target on the command line and in the artifact store.
	Name string `json:"name"`

	// APIFile is the path to the OpenAPI specification.
	APIFile string `json:"apiFile"`
	// APIFragments are additional OpenAPI documents merged into APIFile.
	APIFragments []string `json:"apiFragments,omitempty"`
	// ExternalReferenceResolution is "targeted" or "aggressive".
	ExternalReferenceResolution *fabrikt.ExternalReferenceResolution `json:"externalReferenceResolution,omitempty"`
	// VerifyAPIFile loads and validates APIFile before fabrikt runs.
	VerifyAPIFile bool `json:"verifyApiFile,omitempty"`

	// BasePackage is the Kotlin package of the generated code.
	BasePackage string `json:"basePackage"`
	// OutputDirectory defaults to Defaults.OutputDirectory.
	OutputDirectory string `json:"outputDirectory,omitempty"`
	// SourcesPath is relative to OutputDirectory.
	SourcesPath *string `json:"sourcesPath,omitempty"`
	// ResourcesPath is relative to OutputDirectory.
	ResourcesPath *string `json:"resourcesPath,omitempty"`

	ValidationLibrary       *fabrikt.ValidationLibrary `json:"validationLibrary,omitempty"`
	QuarkusReflectionConfig bool                       `json:"quarkusReflectionConfig,omitempty"`
	TypeOverrides           TypeOverridesSpec          `json:"typeOverrides"`

	Client     ClientSpec     `json:"client"`
	Controller ControllerSpec `json:"controller"`
	Model      ModelSpec      `json:"model"`
}

// TypeOverridesSpec holds the type mapping overrides.
type TypeOverridesSpec struct {
	Datetime *fabrikt.DatetimeOverride `json:"datetime,omitempty"`
}

// ClientSpec configures HTTP client generation.
type ClientSpec struct {
	Generate        bool                  `json:"generate,omitempty"`
	Target          *fabrikt.ClientTarget `json:"target,omitempty"`
	Resilience4j    bool                  `json:"resilience4j,omitempty"`
	SuspendModifier bool                  `json:"suspendModifier,omitempty"`
}

// ControllerSpec configures HTTP controller generation.
type ControllerSpec struct {
	Generate        bool                      `json:"generate,omitempty"`
	Target          *fabrikt.ControllerTarget `json:"target,omitempty"`
	Authentication  bool                      `json:"authentication,omitempty"`
	SuspendModifier bool                      `json:"suspendModifier,omitempty"`
}

// ModelSpec configures HTTP model generation. Models are generated unless
// Generate is explicitly false.
type ModelSpec struct {
	Generate                 *bool `json:"generate,omitempty"`
	ExtensibleEnums          bool  `json:"extensibleEnums,omitempty"`
	JavaSerialization        bool  `json:"javaSerialization,omitempty"`
	QuarkusReflection        bool  `json:"quarkusReflection,omitempty"`
	MicronautIntrospection   bool  `json:"micronautIntrospection,omitempty"`
	MicronautReflection      bool  `json:"micronautReflection,omitempty"`
	IncludeCompanionObject   bool  `json:"includeCompanionObject,omitempty"`
	SealedInterfacesForOneOf bool  `json:"sealedInterfacesForOneOf,omitempty"`
}

// ApplyDefaults sets the defaults of every generation target and resolves their
// paths against baseDir.
func (c *FabriktConfig) ApplyDefaults(baseDir string) {
	c.EnvFile = resolvePath(baseDir, c.EnvFile)

	outDir := c.Defaults.OutputDirectory
	if outDir == "" {
		outDir = DefaultOutputDirectory
	}

	for i := range c.Generate {
		c.Generate[i].applyDefaults(baseDir, outDir)
	}
}

func (g *GenerateSpec) applyDefaults(baseDir, outDir string) {
	if g.OutputDirectory == "" { // it takes precedence over defaults.
		g.OutputDirectory = outDir
	}

	g.APIFile = resolvePath(baseDir, g.APIFile)
	g.OutputDirectory = resolvePath(baseDir, g.OutputDirectory)
	for i := range g.APIFragments {
		g.APIFragments[i] = resolvePath(baseDir, g.APIFragments[i])
	}

	if g.Client.Target == nil {
		g.Client.Target = ptr.To(DefaultClientTarget)
	}
	if g.Controller.Target == nil {
		g.Controller.Target = ptr.To(DefaultControllerTarget)
	}
	if g.Model.Generate == nil {
		g.Model.Generate = ptr.To(true)
	}
}

// Target returns the generation target with the given name.
func (c FabriktConfig) Target(name string) (GenerateSpec, bool) {
	for _, g := range c.Generate {
		if g.Name == name {
			return g, true
		}
	}
	return GenerateSpec{}, false
}

// EffectiveSourcesPath returns the sources path fabrikt writes to.
func (g GenerateSpec) EffectiveSourcesPath() string {
	return ptr.Deref(g.SourcesPath, DefaultSourcesPath)
}

// EffectiveResourcesPath returns the resources path fabrikt writes to.
func (g GenerateSpec) EffectiveResourcesPath() string {
	return ptr.Deref(g.ResourcesPath, DefaultResourcesPath)
}

// EffectiveValidationLibrary returns the validation library of the generated code.
func (g GenerateSpec) EffectiveValidationLibrary() fabrikt.ValidationLibrary {
	return ptr.Deref(g.ValidationLibrary, DefaultValidationLibrary)
}

// Configuration converts the spec into the configuration compiled into fabrikt
// arguments. The returned value shares no memory with g.
func (g GenerateSpec) Configuration() fabrikt.Configuration {
	return fabrikt.Configuration{
		APIFile:                     g.APIFile,
		APIFragments:                append([]string(nil), g.APIFragments...),
		ExternalReferenceResolution: copyPtr(g.ExternalReferenceResolution),
		BasePackage:                 g.BasePackage,
		OutputDirectory:             g.OutputDirectory,
		SourcesPath:                 copyPtr(g.SourcesPath),
		ResourcesPath:               copyPtr(g.ResourcesPath),
		ValidationLibrary:           copyPtr(g.ValidationLibrary),
		QuarkusReflectionConfig:     g.QuarkusReflectionConfig,
		TypeOverrides: fabrikt.TypeOverrides{
			Datetime: copyPtr(g.TypeOverrides.Datetime),
		},
		Client: fabrikt.ClientConfiguration{
			Generate:        g.Client.Generate,
			Target:          copyPtr(g.Client.Target),
			Resilience4j:    g.Client.Resilience4j,
			SuspendModifier: g.Client.SuspendModifier,
		},
		Controller: fabrikt.ControllerConfiguration{
			Generate:        g.Controller.Generate,
			Target:          copyPtr(g.Controller.Target),
			Authentication:  g.Controller.Authentication,
			SuspendModifier: g.Controller.SuspendModifier,
		},
		Model: fabrikt.ModelConfiguration{
			Generate:                 ptr.Deref(g.Model.Generate, true),
			ExtensibleEnums:          g.Model.ExtensibleEnums,
			JavaSerialization:        g.Model.JavaSerialization,
			QuarkusReflection:        g.Model.QuarkusReflection,
			MicronautIntrospection:   g.Model.MicronautIntrospection,
			MicronautReflection:      g.Model.MicronautReflection,
			IncludeCompanionObject:   g.Model.IncludeCompanionObject,
			SealedInterfacesForOneOf: g.Model.SealedInterfacesForOneOf,
		},
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr.To(*p)
}
