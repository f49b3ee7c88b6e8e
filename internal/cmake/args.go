package cmake

// Returns the arguments for the configure step.
//
// The build type is baked into the tree through CMAKE_BUILD_TYPE only for
// single-config generators. A single-config generator with [Both] has no
// single configuration to bake in, so the definition is omitted; callers are
// expected to reject that combination first. Extra arguments are appended
// unchanged.
func ConfigureArgs(source, binary string, gen Generator, buildType BuildType, extra []string) []string {
	args := []string{"-S", source, "-B", binary, "-G", gen.Name}

	if !gen.MultiConfig {
		if configs := buildType.Configs(); len(configs) == 1 {
			args = append(args, "-DCMAKE_BUILD_TYPE="+configs[0])
		}
	}

	return append(args, extra...)
}

// Returns the arguments for the build step.
//
// An empty config builds whatever configuration the tree was generated for,
// which is how single-config trees are built.
func BuildArgs(binary, config string) []string {
	args := []string{"--build", binary}
	if config != "" {
		args = append(args, "--config", config)
	}
	return args
}
