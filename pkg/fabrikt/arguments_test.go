//go:build unit

package fabrikt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func minimalConfig() Configuration {
	return Configuration{
		APIFile:         "/project/src/main/openapi/Dog.yaml",
		BasePackage:     "ch.acanda",
		OutputDirectory: "/project/build/generated/fabrikt",
		Model:           ModelConfiguration{Generate: true},
	}
}

func TestCompile_MinimalConfiguration(t *testing.T) {
	args := Compile(minimalConfig())

	assert.Equal(t, []string{
		"--api-file", "/project/src/main/openapi/Dog.yaml",
		"--base-package", "ch.acanda",
		"--output-directory", "/project/build/generated/fabrikt",
		"--targets", "HTTP_MODELS",
	}, args)
}

func TestCompile_NothingEnabledEmitsNoTargets(t *testing.T) {
	config := minimalConfig()
	config.Model.Generate = false

	args := Compile(config)

	assert.Len(t, args, 6)
	assert.NotContains(t, args, ArgTargets)
}

func TestCompile_ClientWithResilience4jAndOpenFeign(t *testing.T) {
	config := minimalConfig()
	config.Client = ClientConfiguration{
		Generate:     true,
		Target:       ptr.To(ClientTargetOpenFeign),
		Resilience4j: true,
	}

	args := Compile(config)

	assert.Equal(t, []string{
		"--api-file", "/project/src/main/openapi/Dog.yaml",
		"--base-package", "ch.acanda",
		"--output-directory", "/project/build/generated/fabrikt",
		"--targets", "CLIENT",
		"--http-client-opts", "RESILIENCE4J",
		"--http-client-target", "OPEN_FEIGN",
		"--targets", "HTTP_MODELS",
	}, args)
}

func TestCompile_FragmentsKeepOrderAndDuplicates(t *testing.T) {
	config := minimalConfig()
	config.APIFragments = []string{"/f2.yaml", "/f1.yaml", "/f2.yaml"}

	args := Compile(config)

	require.GreaterOrEqual(t, len(args), 12)
	assert.Equal(t, []string{
		"--api-fragment", "/f2.yaml",
		"--api-fragment", "/f1.yaml",
		"--api-fragment", "/f2.yaml",
	}, args[6:12])
}

func TestCompile_FullConfiguration(t *testing.T) {
	config := Configuration{
		APIFile:                     "/api.yaml",
		APIFragments:                []string{"/fragment.yaml"},
		ExternalReferenceResolution: ptr.To(ExternalReferenceResolutionAggressive),
		BasePackage:                 "ch.acanda",
		OutputDirectory:             "/out",
		SourcesPath:                 ptr.To("src/fabrikt/kotlin"),
		ResourcesPath:               ptr.To("src/fabrikt/res"),
		ValidationLibrary:           ptr.To(ValidationLibraryJavax),
		QuarkusReflectionConfig:     true,
		TypeOverrides:               TypeOverrides{Datetime: ptr.To(DatetimeOverrideLocalDateTime)},
		Client: ClientConfiguration{
			Generate:        true,
			Target:          ptr.To(ClientTargetOkHttp),
			Resilience4j:    true,
			SuspendModifier: true,
		},
		Controller: ControllerConfiguration{
			Generate:        true,
			Target:          ptr.To(ControllerTargetMicronaut),
			Authentication:  true,
			SuspendModifier: true,
		},
		Model: ModelConfiguration{
			Generate:                 true,
			ExtensibleEnums:          true,
			JavaSerialization:        true,
			QuarkusReflection:        true,
			MicronautIntrospection:   true,
			MicronautReflection:      true,
			IncludeCompanionObject:   true,
			SealedInterfacesForOneOf: true,
		},
	}

	args := Compile(config)

	assert.Equal(t, []string{
		"--api-file", "/api.yaml",
		"--base-package", "ch.acanda",
		"--output-directory", "/out",
		"--api-fragment", "/fragment.yaml",
		"--external-ref-resolution", "AGGRESSIVE",
		"--src-path", "src/fabrikt/kotlin",
		"--resources-path", "src/fabrikt/res",
		"--type-overrides", "DATETIME_AS_LOCALDATETIME",
		"--validation-library", "JAVAX_VALIDATION",
		"--targets", "QUARKUS_REFLECTION_CONFIG",
		"--targets", "CLIENT",
		"--http-client-opts", "RESILIENCE4J",
		"--http-client-opts", "SUSPEND_MODIFIER",
		"--http-client-target", "OK_HTTP",
		"--targets", "CONTROLLERS",
		"--http-controller-opts", "AUTHENTICATION",
		"--http-controller-opts", "SUSPEND_MODIFIER",
		"--http-controller-target", "MICRONAUT",
		"--targets", "HTTP_MODELS",
		"--http-model-opts", "X_EXTENSIBLE_ENUMS",
		"--http-model-opts", "JAVA_SERIALIZATION",
		"--http-model-opts", "QUARKUS_REFLECTION",
		"--http-model-opts", "MICRONAUT_INTROSPECTION",
		"--http-model-opts", "MICRONAUT_REFLECTION",
		"--http-model-opts", "INCLUDE_COMPANION_OBJECT",
		"--http-model-opts", "SEALED_INTERFACES_FOR_ONE_OF",
	}, args)
}

func TestCompile_DisabledBlocksIgnoreTheirOptions(t *testing.T) {
	config := minimalConfig()
	config.Client = ClientConfiguration{
		Target:          ptr.To(ClientTargetOpenFeign),
		Resilience4j:    true,
		SuspendModifier: true,
	}
	config.Controller = ControllerConfiguration{
		Target:         ptr.To(ControllerTargetSpring),
		Authentication: true,
	}
	config.Model = ModelConfiguration{JavaSerialization: true}

	args := Compile(config)

	assert.Len(t, args, 6)
	for _, flag := range []string{ArgTargets, ArgClientOpts, ArgClientTarget, ArgControllerOpts, ArgControllerTarget, ArgModelOpts} {
		assert.NotContains(t, args, flag)
	}
}

func TestCompile_FalseTogglesEmitNothing(t *testing.T) {
	config := minimalConfig()
	config.Client.Generate = true
	config.Controller.Generate = true

	args := Compile(config)

	assert.Equal(t, []string{ArgTargets, "CLIENT", ArgTargets, "CONTROLLERS", ArgTargets, "HTTP_MODELS"}, args[6:])
}

func TestCompile_EachModelOptionAppearsOnce(t *testing.T) {
	setters := map[string]func(*ModelConfiguration){
		"X_EXTENSIBLE_ENUMS":           func(m *ModelConfiguration) { m.ExtensibleEnums = true },
		"JAVA_SERIALIZATION":           func(m *ModelConfiguration) { m.JavaSerialization = true },
		"QUARKUS_REFLECTION":           func(m *ModelConfiguration) { m.QuarkusReflection = true },
		"MICRONAUT_INTROSPECTION":      func(m *ModelConfiguration) { m.MicronautIntrospection = true },
		"MICRONAUT_REFLECTION":         func(m *ModelConfiguration) { m.MicronautReflection = true },
		"INCLUDE_COMPANION_OBJECT":     func(m *ModelConfiguration) { m.IncludeCompanionObject = true },
		"SEALED_INTERFACES_FOR_ONE_OF": func(m *ModelConfiguration) { m.SealedInterfacesForOneOf = true },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			config := minimalConfig()
			set(&config.Model)

			args := Compile(config)

			assert.Equal(t, []string{ArgTargets, "HTTP_MODELS", ArgModelOpts, name}, args[6:])
		})
	}
}

func TestCompile_UnknownEnumValuesEmitNothing(t *testing.T) {
	config := minimalConfig()
	config.ValidationLibrary = ptr.To(ValidationLibrary("Hibernate"))
	config.ExternalReferenceResolution = ptr.To(ExternalReferenceResolution("lazy"))
	config.Client = ClientConfiguration{Generate: true, Target: ptr.To(ClientTarget("Ktor"))}

	args := Compile(config)

	assert.Equal(t, []string{ArgTargets, "CLIENT", ArgTargets, "HTTP_MODELS"}, args[6:])
}

func TestCompile_Idempotent(t *testing.T) {
	config := minimalConfig()
	config.APIFragments = []string{"/a.yaml", "/b.yaml"}
	config.Controller = ControllerConfiguration{Generate: true, Authentication: true}

	assert.Equal(t, Compile(config), Compile(config))
}

func TestCompile_DoesNotAliasFragments(t *testing.T) {
	config := minimalConfig()
	config.APIFragments = []string{"/a.yaml"}

	args := Compile(config)
	args[7] = "/changed.yaml"

	assert.Equal(t, "/a.yaml", config.APIFragments[0])
}
