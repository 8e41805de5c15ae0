package forge

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/fabrikt"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var kotlinPackageRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate validates the fabrikt configuration. It expects defaults to be applied.
func (c *FabriktConfig) Validate(fldPath *field.Path) field.ErrorList {
	errs := field.ErrorList{}

	if c.EnvFile != "" {
		errs = append(errs, validateFile(fldPath.Child("envFile"), c.EnvFile)...)
	}

	genPath := fldPath.Child("generate")
	if len(c.Generate) == 0 {
		errs = append(errs, field.Required(genPath, "at least one generation target must be configured"))
	}

	names := make(map[string]struct{}, len(c.Generate))
	for i := range c.Generate {
		idxPath := genPath.Index(i)
		g := &c.Generate[i]

		if _, ok := names[g.Name]; ok && g.Name != "" {
			errs = append(errs, field.Duplicate(idxPath.Child("name"), g.Name))
		}
		names[g.Name] = struct{}{}

		errs = append(errs, g.Validate(idxPath)...)
	}

	return errs
}

// Validate validates a single generation target.
func (g *GenerateSpec) Validate(fldPath *field.Path) field.ErrorList {
	errs := field.ErrorList{}

	if g.Name == "" {
		errs = append(errs, field.Required(fldPath.Child("name"), ""))
	}

	if g.APIFile == "" {
		errs = append(errs, field.Required(fldPath.Child("apiFile"), ""))
	} else {
		errs = append(errs, validateFile(fldPath.Child("apiFile"), g.APIFile)...)
	}

	for i, fragment := range g.APIFragments {
		errs = append(errs, validateFile(fldPath.Child("apiFragments").Index(i), fragment)...)
	}

	switch {
	case g.BasePackage == "":
		errs = append(errs, field.Required(fldPath.Child("basePackage"), ""))
	case !kotlinPackageRegexp.MatchString(g.BasePackage):
		errs = append(errs, field.Invalid(fldPath.Child("basePackage"), g.BasePackage, "must be a dot separated Kotlin package name"))
	}

	if g.OutputDirectory == "" {
		errs = append(errs, field.Required(fldPath.Child("outputDirectory"), ""))
	}

	errs = append(errs, validateRelative(fldPath.Child("sourcesPath"), g.SourcesPath)...)
	errs = append(errs, validateRelative(fldPath.Child("resourcesPath"), g.ResourcesPath)...)

	errs = append(errs, validateEnum(fldPath.Child("externalReferenceResolution"), fabrikt.SettingExternalReferenceResolution, g.ExternalReferenceResolution)...)
	errs = append(errs, validateEnum(fldPath.Child("validationLibrary"), fabrikt.SettingValidationLibrary, g.ValidationLibrary)...)
	errs = append(errs, validateEnum(fldPath.Child("typeOverrides", "datetime"), fabrikt.SettingDatetimeOverride, g.TypeOverrides.Datetime)...)
	errs = append(errs, validateEnum(fldPath.Child("client", "target"), fabrikt.SettingClientTarget, g.Client.Target)...)
	errs = append(errs, validateEnum(fldPath.Child("controller", "target"), fabrikt.SettingControllerTarget, g.Controller.Target)...)

	return errs
}

func validateFile(fldPath *field.Path, path string) field.ErrorList {
	info, err := os.Stat(path)
	if err != nil {
		return field.ErrorList{field.NotFound(fldPath, path)}
	}
	if info.IsDir() {
		return field.ErrorList{field.Invalid(fldPath, path, "must be a file, not a directory")}
	}
	return nil
}

func validateRelative(fldPath *field.Path, path *string) field.ErrorList {
	if path == nil {
		return nil
	}
	if *path == "" {
		return field.ErrorList{field.Invalid(fldPath, *path, "must not be empty when set")}
	}
	if filepath.IsAbs(*path) {
		return field.ErrorList{field.Invalid(fldPath, *path, "must be relative to the output directory")}
	}
	return nil
}

func validateEnum[T ~string](fldPath *field.Path, setting string, value *T) field.ErrorList {
	if value == nil {
		return nil
	}

	supported := fabrikt.SupportedValues(setting)
	for _, s := range supported {
		if s == string(*value) {
			return nil
		}
	}

	return field.ErrorList{field.NotSupported(fldPath, string(*value), supported)}
}
