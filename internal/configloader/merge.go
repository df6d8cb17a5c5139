package configloader

import "github.com/yaklabco/latexmark/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil, except
//     Environments, which are merged by name (see mergeEnvironments)
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Environments != nil {
		result.Environments = mergeEnvironments(base.Environments, override.Environments)
	}

	return &result
}

// mergeEnvironments merges two environment-extension lists, with override
// entries replacing a base entry of the same name and new names appended.
func mergeEnvironments(base, override []config.EnvironmentConfig) []config.EnvironmentConfig {
	if base == nil {
		return append([]config.EnvironmentConfig(nil), override...)
	}

	result := append([]config.EnvironmentConfig(nil), base...)
	for _, ov := range override {
		replaced := false
		for i, existing := range result {
			if existing.Name == ov.Name {
				result[i] = ov
				replaced = true
				break
			}
		}
		if !replaced {
			result = append(result, ov)
		}
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
