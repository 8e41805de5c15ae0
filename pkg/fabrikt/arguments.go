package fabrikt

// Flags of the fabrikt CLI.
const (
	ArgAPIFile          = "--api-file"
	ArgAPIFragment      = "--api-fragment"
	ArgExtRefResolution = "--external-ref-resolution"
	ArgBasePackage      = "--base-package"
	ArgOutDir           = "--output-directory"
	ArgSrcPath          = "--src-path"
	ArgResourcesPath    = "--resources-path"
	ArgTypeOverrides    = "--type-overrides"
	ArgValidationLib    = "--validation-library"
	ArgTargets          = "--targets"
	ArgClientOpts       = "--http-client-opts"
	ArgClientTarget     = "--http-client-target"
	ArgControllerOpts   = "--http-controller-opts"
	ArgControllerTarget = "--http-controller-target"
	ArgModelOpts        = "--http-model-opts"
)

// Compile returns the fabrikt command line arguments for config.
//
// The first six elements are always the api file, base package and output
// directory flags. The remaining sections follow in a fixed order; --targets may
// appear several times and is never merged. Compile does not validate config:
// absent optional values and enum values unknown to the vocabulary emit nothing.
func Compile(config Configuration) []string {
	sections := [][]string{
		prefixArgs(config),
		fragmentArgs(config.APIFragments),
		externalRefArgs(config.ExternalReferenceResolution),
		optionalArg(ArgSrcPath, config.SourcesPath),
		optionalArg(ArgResourcesPath, config.ResourcesPath),
		typeOverridesArgs(config.TypeOverrides),
		validationLibraryArgs(config.ValidationLibrary),
		reflectionConfigArgs(config.QuarkusReflectionConfig),
		clientArgs(config.Client),
		controllerArgs(config.Controller),
		modelArgs(config.Model),
	}

	size := 0
	for _, s := range sections {
		size += len(s)
	}

	args := make([]string, 0, size)
	for _, s := range sections {
		args = append(args, s...)
	}

	return args
}

func prefixArgs(config Configuration) []string {
	return []string{
		ArgAPIFile, config.APIFile,
		ArgBasePackage, config.BasePackage,
		ArgOutDir, config.OutputDirectory,
	}
}

func fragmentArgs(fragments []string) []string {
	args := make([]string, 0, 2*len(fragments))
	for _, fragment := range fragments {
		args = append(args, ArgAPIFragment, fragment)
	}
	return args
}

func externalRefArgs(resolution *ExternalReferenceResolution) []string {
	if resolution == nil {
		return nil
	}
	return namedArg(ArgExtRefResolution, resolution.FabriktName)
}

func typeOverridesArgs(overrides TypeOverrides) []string {
	if overrides.Datetime == nil {
		return nil
	}
	return namedArg(ArgTypeOverrides, overrides.Datetime.FabriktName)
}

func validationLibraryArgs(library *ValidationLibrary) []string {
	if library == nil {
		return nil
	}
	return namedArg(ArgValidationLib, library.FabriktName)
}

func reflectionConfigArgs(enabled bool) []string {
	if !enabled {
		return nil
	}
	return []string{ArgTargets, targetQuarkusReflectionConfig}
}

func clientArgs(client ClientConfiguration) []string {
	if !client.Generate {
		return nil
	}

	args := []string{ArgTargets, targetClient}
	args = append(args, toggleArgs(ArgClientOpts, clientOptions, client)...)
	if client.Target != nil {
		args = append(args, namedArg(ArgClientTarget, client.Target.FabriktName)...)
	}

	return args
}

func controllerArgs(controller ControllerConfiguration) []string {
	if !controller.Generate {
		return nil
	}

	args := []string{ArgTargets, targetControllers}
	args = append(args, toggleArgs(ArgControllerOpts, controllerOptions, controller)...)
	if controller.Target != nil {
		args = append(args, namedArg(ArgControllerTarget, controller.Target.FabriktName)...)
	}

	return args
}

func modelArgs(model ModelConfiguration) []string {
	if !model.Generate {
		return nil
	}

	args := []string{ArgTargets, targetHTTPModels}
	return append(args, toggleArgs(ArgModelOpts, modelOptions, model)...)
}

func toggleArgs[C any](flag string, toggles []toggle[C], config C) []string {
	var args []string
	for _, t := range toggles {
		if t.enabled(config) {
			args = append(args, flag, t.Name)
		}
	}
	return args
}

func optionalArg(flag string, value *string) []string {
	if value == nil {
		return nil
	}
	return []string{flag, *value}
}

// namedArg returns the flag and the fabrikt name, or nothing if the value is
// not part of the vocabulary.
func namedArg(flag string, name func() (string, bool)) []string {
	n, ok := name()
	if !ok {
		return nil
	}
	return []string{flag, n}
}
