package fabrikt

// Configuration is the resolved configuration of one generation target.
// Optional values are pointers: nil means the generator applies its own default.
type Configuration struct {
	// APIFile is the path to the primary OpenAPI document.
	APIFile string
	// APIFragments are supplementary OpenAPI documents, passed in order.
	APIFragments []string
	// ExternalReferenceResolution selects how external $refs are resolved.
	ExternalReferenceResolution *ExternalReferenceResolution

	// BasePackage is the Kotlin package of the generated code.
	BasePackage string
	// OutputDirectory is the root directory of the generated sources.
	OutputDirectory string
	// SourcesPath is the source directory relative to OutputDirectory.
	SourcesPath *string
	// ResourcesPath is the resource directory relative to OutputDirectory.
	ResourcesPath *string

	ValidationLibrary       *ValidationLibrary
	QuarkusReflectionConfig bool
	TypeOverrides           TypeOverrides

	Client     ClientConfiguration
	Controller ControllerConfiguration
	Model      ModelConfiguration
}

// TypeOverrides holds the type mapping overrides.
type TypeOverrides struct {
	Datetime *DatetimeOverride
}

// ClientConfiguration configures HTTP client generation.
type ClientConfiguration struct {
	Generate        bool
	Target          *ClientTarget
	Resilience4j    bool
	SuspendModifier bool
}

// ControllerConfiguration configures HTTP controller generation.
type ControllerConfiguration struct {
	Generate        bool
	Target          *ControllerTarget
	Authentication  bool
	SuspendModifier bool
}

// ModelConfiguration configures HTTP model generation.
type ModelConfiguration struct {
	Generate                 bool
	ExtensibleEnums          bool
	JavaSerialization        bool
	QuarkusReflection        bool
	MicronautIntrospection   bool
	MicronautReflection      bool
	IncludeCompanionObject   bool
	SealedInterfacesForOneOf bool
}
