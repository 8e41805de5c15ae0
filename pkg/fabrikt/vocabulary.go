package fabrikt

import "sort"

// The values in this file are the configuration-side enums and their mapping to
// the names published by the fabrikt CLI. The fabrikt names are opaque: they are
// looked up, never derived.

// ExternalReferenceResolution selects how fabrikt resolves external references.
type ExternalReferenceResolution string

const (
	ExternalReferenceResolutionTargeted   ExternalReferenceResolution = "targeted"
	ExternalReferenceResolutionAggressive ExternalReferenceResolution = "aggressive"
)

// ValidationLibrary selects the bean validation annotations of the generated code.
type ValidationLibrary string

const (
	ValidationLibraryJakarta ValidationLibrary = "Jakarta"
	ValidationLibraryJavax   ValidationLibrary = "Javax"
)

// DatetimeOverride overrides the Kotlin type used for date-time properties.
type DatetimeOverride string

const (
	DatetimeOverrideInstant       DatetimeOverride = "Instant"
	DatetimeOverrideLocalDateTime DatetimeOverride = "LocalDateTime"
)

// ClientTarget selects the HTTP client framework.
type ClientTarget string

const (
	ClientTargetOkHttp    ClientTarget = "OkHttp"
	ClientTargetOpenFeign ClientTarget = "OpenFeign"
)

// ControllerTarget selects the HTTP controller framework.
type ControllerTarget string

const (
	ControllerTargetSpring    ControllerTarget = "Spring"
	ControllerTargetMicronaut ControllerTarget = "Micronaut"
)

// Settings of the vocabulary, as named in the configuration file.
const (
	SettingExternalReferenceResolution = "externalReferenceResolution"
	SettingValidationLibrary           = "validationLibrary"
	SettingDatetimeOverride            = "typeOverrides.datetime"
	SettingClientTarget                = "client.target"
	SettingControllerTarget            = "controller.target"
	SettingClientOptions               = "client"
	SettingControllerOptions           = "controller"
	SettingModelOptions                = "model"
	SettingTargets                     = "targets"
)

// Entry is one value of the vocabulary.
type Entry struct {
	// Setting is the configuration setting the value belongs to.
	Setting string
	// Value is the value as written in the configuration file.
	Value string
	// Name is the canonical fabrikt name passed on the command line.
	Name string
	// Description is a short human readable description.
	Description string
}

type table[T ~string] []Entry

func (t table[T]) name(v T) (string, bool) {
	for _, e := range t {
		if e.Value == string(v) {
			return e.Name, true
		}
	}
	return "", false
}

func (t table[T]) values() []string {
	out := make([]string, 0, len(t))
	for _, e := range t {
		out = append(out, e.Value)
	}
	return out
}

var (
	externalReferenceResolutions = table[ExternalReferenceResolution]{
		{SettingExternalReferenceResolution, "targeted", "TARGETED", "Resolve only the external references that are used."},
		{SettingExternalReferenceResolution, "aggressive", "AGGRESSIVE", "Resolve every schema of referenced external documents."},
	}

	validationLibraries = table[ValidationLibrary]{
		{SettingValidationLibrary, "Jakarta", "JAKARTA_VALIDATION", "Use jakarta.validation annotations."},
		{SettingValidationLibrary, "Javax", "JAVAX_VALIDATION", "Use javax.validation annotations."},
	}

	datetimeOverrides = table[DatetimeOverride]{
		{SettingDatetimeOverride, "Instant", "DATETIME_AS_INSTANT", "Map date-time to java.time.Instant."},
		{SettingDatetimeOverride, "LocalDateTime", "DATETIME_AS_LOCALDATETIME", "Map date-time to java.time.LocalDateTime."},
	}

	clientTargets = table[ClientTarget]{
		{SettingClientTarget, "OkHttp", "OK_HTTP", "Generate clients based on OkHttp."},
		{SettingClientTarget, "OpenFeign", "OPEN_FEIGN", "Generate clients based on OpenFeign."},
	}

	controllerTargets = table[ControllerTarget]{
		{SettingControllerTarget, "Spring", "SPRING", "Generate Spring MVC controllers."},
		{SettingControllerTarget, "Micronaut", "MICRONAUT", "Generate Micronaut controllers."},
	}
)

// Code generation types passed with --targets.
const (
	targetQuarkusReflectionConfig = "QUARKUS_REFLECTION_CONFIG"
	targetClient                  = "CLIENT"
	targetControllers             = "CONTROLLERS"
	targetHTTPModels              = "HTTP_MODELS"
)

var codeGenerationTypes = []Entry{
	{SettingTargets, "quarkusReflectionConfig", targetQuarkusReflectionConfig, "Generate the Quarkus reflection configuration."},
	{SettingTargets, "client.generate", targetClient, "Generate HTTP clients."},
	{SettingTargets, "controller.generate", targetControllers, "Generate HTTP controllers."},
	{SettingTargets, "model.generate", targetHTTPModels, "Generate HTTP models."},
}

// toggle is a boolean option of a generation block.
type toggle[C any] struct {
	Entry
	enabled func(C) bool
}

var clientOptions = []toggle[ClientConfiguration]{
	{Entry{SettingClientOptions, "resilience4j", "RESILIENCE4J", "Wrap client calls with a resilience4j circuit breaker."},
		func(c ClientConfiguration) bool { return c.Resilience4j }},
	{Entry{SettingClientOptions, "suspendModifier", "SUSPEND_MODIFIER", "Generate suspending client functions."},
		func(c ClientConfiguration) bool { return c.SuspendModifier }},
}

var controllerOptions = []toggle[ControllerConfiguration]{
	{Entry{SettingControllerOptions, "authentication", "AUTHENTICATION", "Add an authentication parameter to controller functions."},
		func(c ControllerConfiguration) bool { return c.Authentication }},
	{Entry{SettingControllerOptions, "suspendModifier", "SUSPEND_MODIFIER", "Generate suspending controller functions."},
		func(c ControllerConfiguration) bool { return c.SuspendModifier }},
}

// modelOptions are emitted in this order.
var modelOptions = []toggle[ModelConfiguration]{
	{Entry{SettingModelOptions, "extensibleEnums", "X_EXTENSIBLE_ENUMS", "Honour x-extensible-enum."},
		func(m ModelConfiguration) bool { return m.ExtensibleEnums }},
	{Entry{SettingModelOptions, "javaSerialization", "JAVA_SERIALIZATION", "Make models implement java.io.Serializable."},
		func(m ModelConfiguration) bool { return m.JavaSerialization }},
	{Entry{SettingModelOptions, "quarkusReflection", "QUARKUS_REFLECTION", "Annotate models with @RegisterForReflection."},
		func(m ModelConfiguration) bool { return m.QuarkusReflection }},
	{Entry{SettingModelOptions, "micronautIntrospection", "MICRONAUT_INTROSPECTION", "Annotate models with @Introspected."},
		func(m ModelConfiguration) bool { return m.MicronautIntrospection }},
	{Entry{SettingModelOptions, "micronautReflection", "MICRONAUT_REFLECTION", "Annotate models with @ReflectiveAccess."},
		func(m ModelConfiguration) bool { return m.MicronautReflection }},
	{Entry{SettingModelOptions, "includeCompanionObject", "INCLUDE_COMPANION_OBJECT", "Add a companion object to every model."},
		func(m ModelConfiguration) bool { return m.IncludeCompanionObject }},
	{Entry{SettingModelOptions, "sealedInterfacesForOneOf", "SEALED_INTERFACES_FOR_ONE_OF", "Generate sealed interfaces for oneOf schemas."},
		func(m ModelConfiguration) bool { return m.SealedInterfacesForOneOf }},
}

// FabriktName returns the fabrikt name of r.
func (r ExternalReferenceResolution) FabriktName() (string, bool) {
	return externalReferenceResolutions.name(r)
}

// FabriktName returns the fabrikt name of l.
func (l ValidationLibrary) FabriktName() (string, bool) { return validationLibraries.name(l) }

// FabriktName returns the fabrikt name of o.
func (o DatetimeOverride) FabriktName() (string, bool) { return datetimeOverrides.name(o) }

// FabriktName returns the fabrikt name of t.
func (t ClientTarget) FabriktName() (string, bool) { return clientTargets.name(t) }

// FabriktName returns the fabrikt name of t.
func (t ControllerTarget) FabriktName() (string, bool) { return controllerTargets.name(t) }

// SupportedValues returns the configuration values accepted for an enum setting,
// or nil if setting is not an enum setting.
func SupportedValues(setting string) []string {
	switch setting {
	case SettingExternalReferenceResolution:
		return externalReferenceResolutions.values()
	case SettingValidationLibrary:
		return validationLibraries.values()
	case SettingDatetimeOverride:
		return datetimeOverrides.values()
	case SettingClientTarget:
		return clientTargets.values()
	case SettingControllerTarget:
		return controllerTargets.values()
	}
	return nil
}

// Vocabulary returns every entry known to the compiler, grouped by setting.
func Vocabulary() []Entry {
	var out []Entry
	out = append(out, externalReferenceResolutions...)
	out = append(out, validationLibraries...)
	out = append(out, datetimeOverrides...)
	out = append(out, clientTargets...)
	out = append(out, controllerTargets...)
	out = append(out, codeGenerationTypes...)
	for _, o := range clientOptions {
		out = append(out, o.Entry)
	}
	for _, o := range controllerOptions {
		out = append(out, o.Entry)
	}
	for _, o := range modelOptions {
		out = append(out, o.Entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Setting < out[j].Setting })

	return out
}
