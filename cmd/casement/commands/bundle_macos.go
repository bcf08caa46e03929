package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// BundleMacOS implements the 'casement bundle-macos' command
func BundleMacOS(args []string) error {
	fs := flag.NewFlagSet("bundle-macos", flag.ExitOnError)
	release := fs.Bool("release", false, "Build in release mode")
	outputDir := fs.String("output", "", "Output directory for the bundle")
	fs.Parse(args)

	if runtime.GOOS != "darwin" {
		return fmt.Errorf("macOS bundles require macOS")
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Warning: %v, using defaults\n", err)
		config = DefaultConfig()
	}

	out := *outputDir
	if out == "" {
		out = config.Build.OutputDir
	}

	// Locate the SDL2 dylib to embed
	libPath := config.Build.LibraryPath
	if libPath == "" {
		target := CurrentTarget()
		if !LibraryCached(target) {
			return fmt.Errorf("no SDL2 library cached for %s (run 'casement fetch-sdl' first)", target)
		}
		libPath = LibraryCachePath(target)
	}
	if _, err := os.Stat(libPath); err != nil {
		return fmt.Errorf("library not found: %s", libPath)
	}

	// Bundle layout
	appDir := filepath.Join(out, config.App.Name+".app")
	macosDir := filepath.Join(appDir, "Contents", "MacOS")
	frameworksDir := filepath.Join(appDir, "Contents", "Frameworks")
	resourcesDir := filepath.Join(appDir, "Contents", "Resources")
	for _, dir := range []string{macosDir, frameworksDir, resourcesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create bundle directory: %w", err)
		}
	}

	// Build Go application into the bundle
	fmt.Println("Building Go application...")
	exePath := filepath.Join(macosDir, config.App.Name)
	buildArgs := []string{"build", "-o", exePath}
	if *release {
		buildArgs = append(buildArgs, "-ldflags=-s -w")
	}
	entry := config.Build.EntryPoint
	if entry == "" {
		entry = "."
	}
	buildArgs = append(buildArgs, entry)

	goCmd := exec.Command("go", buildArgs...)
	goCmd.Stdout = os.Stdout
	goCmd.Stderr = os.Stderr
	if err := goCmd.Run(); err != nil {
		return fmt.Errorf("go build failed: %w", err)
	}

	// Embed the dylib and point the executable's rpath at it
	libDst := filepath.Join(frameworksDir, filepath.Base(libPath))
	if err := copyFile(libPath, libDst); err != nil {
		return fmt.Errorf("failed to copy library: %w", err)
	}

	rpathCmd := exec.Command("install_name_tool",
		"-add_rpath", "@executable_path/../Frameworks", exePath)
	rpathCmd.Stdout = os.Stdout
	rpathCmd.Stderr = os.Stderr
	if err := rpathCmd.Run(); err != nil {
		return fmt.Errorf("install_name_tool failed: %w", err)
	}

	// Info.plist
	plist := fmt.Sprintf(macosInfoPlistTemplate,
		config.App.Name, config.App.Identifier, config.App.Name,
		config.App.Version, config.App.Version)
	plistPath := filepath.Join(appDir, "Contents", "Info.plist")
	if err := os.WriteFile(plistPath, []byte(plist), 0644); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	fmt.Println("")
	fmt.Println("Bundle complete!")
	fmt.Printf("  App: %s\n", appDir)
	fmt.Println("")
	fmt.Println("To run:")
	fmt.Printf("  open %s\n", appDir)

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

const macosInfoPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleExecutable</key>
	<string>%s</string>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
	<key>CFBundleName</key>
	<string>%s</string>
	<key>CFBundlePackageType</key>
	<string>APPL</string>
	<key>CFBundleShortVersionString</key>
	<string>%s</string>
	<key>CFBundleVersion</key>
	<string>%s</string>
	<key>NSHighResolutionCapable</key>
	<true/>
	<key>LSMinimumSystemVersion</key>
	<string>11.0</string>
</dict>
</plist>
`
