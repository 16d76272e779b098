package motd

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/banner.sh.tmpl
var bannerTemplate string

//go:embed templates/update-motd.sh.tmpl
var triggerTemplate string

// RenderMode tells how the banner hostname header is rendered.
type RenderMode string

const (
	// RenderEnhanced uses the ASCII art renderer.
	RenderEnhanced RenderMode = "enhanced"
	// RenderFallback uses plain text when the renderer is unavailable.
	RenderFallback RenderMode = "fallback"
)

// RenderBannerScript renders the banner generator script. The login guard is
// included for the login profile method, where the script is sourced by
// every shell rather than run by PAM.
func RenderBannerScript(method Method, mode RenderMode, rendererCommand string) (string, error) {
	tmpl, err := template.New("banner").Parse(bannerTemplate)
	if err != nil {
		return "", fmt.Errorf("parse banner template: %w", err)
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, struct {
		LoginGuard      bool
		Enhanced        bool
		RendererCommand string
	}{
		LoginGuard:      method == MethodLoginProfile,
		Enhanced:        mode == RenderEnhanced,
		RendererCommand: rendererCommand,
	})
	if err != nil {
		return "", fmt.Errorf("render banner template: %w", err)
	}
	return sb.String(), nil
}

// RenderTriggerScript renders the banner cache regeneration command.
func RenderTriggerScript(hookDir string) (string, error) {
	tmpl, err := template.New("trigger").Parse(triggerTemplate)
	if err != nil {
		return "", fmt.Errorf("parse trigger template: %w", err)
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, struct {
		HookDir     string
		BannerCache string
	}{HookDir: hookDir, BannerCache: BannerCache})
	if err != nil {
		return "", fmt.Errorf("render trigger template: %w", err)
	}
	return sb.String(), nil
}
