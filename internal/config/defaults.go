package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			ReferenceWidth:       1200,
			MobileBreakpoint:     800,
			WidthFraction:        0.97,
			MinWidth:             320,
			MaxWidth:             900,
			MinHeight:            400,
			MobileMinHeight:      230,
			MobileHeightFraction: 0.46,
			AspectRatio:          9.0 / 16.0,
		},
		Physics: PhysicsConfig{
			Gravity:      0.7,
			JumpVelocity: -15,
			RunSpeed:     5,
		},
		Player: PlayerConfig{
			StartX:       50,
			Size:         96,
			GroundMargin: 20,
		},
		Markers: MarkerConfig{
			Size:         48,
			BottomOffset: 50,
		},
		Ground: GroundConfig{
			Height:  26,
			Color:   "#1e3c5a",
			Opacity: 0.3,
		},
		Overlay: OverlayConfig{
			Tick:         30 * time.Millisecond,
			DismissAfter: 8 * time.Second,
		},
		Assets: AssetConfig{
			Player:    "dev_sprite.png",
			Marker:    "orb.png",
			JumpSound: "jump.wav",
		},
		TUI: TUIConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Variants: map[string]VariantConfig{
			"flat": {
				Title: "Portfolio Runner",
				Phases: []PhaseConfig{
					{
						Background: "server_room_bg.png",
						Window:     2,
						Markers: []MarkerSpec{
							{X: 300, Topic: "about"},
							{X: 650, Topic: "skills"},
							{X: 950, Topic: "projects"},
							{X: 1150, Topic: "certificates"},
						},
						Advance: AdvanceConfig{When: AdvanceNone},
					},
				},
			},
			"phased": {
				Title: "Portfolio Journey",
				Phases: []PhaseConfig{
					{
						Background: "college_bg.png",
						Markers:    []MarkerSpec{{X: 600, Topic: "college"}},
						Advance:    AdvanceConfig{When: AdvanceCollect, Delay: 2 * time.Second},
					},
					{
						Background: "skills_bg.png",
						Markers:    []MarkerSpec{{X: 650, Topic: "skills"}},
						Advance:    AdvanceConfig{When: AdvanceWrap},
					},
					{
						Background: "projects_bg.png",
						Markers:    []MarkerSpec{{X: 950, Topic: "projects"}},
						Advance:    AdvanceConfig{When: AdvanceWrap},
					},
					{
						Background: "certificates_bg.png",
						Markers:    []MarkerSpec{{X: 900, Topic: "certificates"}},
						Advance:    AdvanceConfig{When: AdvanceNone},
					},
				},
			},
		},
		Topics: []TopicConfig{
			{
				ID:      "about",
				Title:   "About",
				Message: "DevOps Engineer with 2 years of experience automating infrastructure and building robust CI/CD pipelines.",
				Links: []LinkConfig{
					{Label: "GitHub Profile", URL: "https://github.com/Jaisharma2512/Smallboy"},
					{Label: "LinkedIn Profile", URL: "https://www.linkedin.com/in/jaisharma2512/"},
					{Label: "Visit Fiverr Profile", URL: "https://www.fiverr.com/sellers/jaisharma2512/edit"},
				},
			},
			{
				ID:      "college",
				Title:   "College",
				Message: "Computer Science graduate from the Himalayas, where the cloud journey began with Linux labs and late-night deployments.",
			},
			{
				ID:      "skills",
				Title:   "Skills",
				Message: "Expert in Google Cloud, Terraform, Jenkins, Kubernetes, Docker, Ansible, ArgoCD, Helm, and more.",
				Note:    "My Cloud and DevOps Skills in action!",
			},
			{
				ID:      "projects",
				Title:   "Projects",
				Message: "Security Playground & Smallboy: deployed robust cloud-native solutions with automated pipelines.",
				Links: []LinkConfig{
					{Label: "Smallboy Live", URL: "https://smallboy.danklofan.com"},
					{Label: "Smallboy GitHub", URL: "https://github.com/Jaisharma2512/Smallboy/tree/k8s-resources"},
					{Label: "Security Playground Live", URL: "https://sc.danklofan.com"},
					{Label: "Security Playground GitHub", URL: "https://github.com/Jaisharma2512/security-playground"},
				},
			},
			{
				ID:      "certificates",
				Title:   "Certificates",
				Message: "Google Cloud Associate Cloud Engineer & IEEE Appreciation.",
				Links: []LinkConfig{
					{Label: "Google Associate Cloud Engineer Certificate", URL: "https://www.credly.com/badges/cc43f249-f710-4c80-b8f1-2aee8011d07f/public_url"},
					{Label: "IEEE Certificate of Appreciation", URL: "https://drive.google.com/file/d/1C24ksyNmTdIhgfdjhaLbmhy0RD326OR-/view?usp=sharing"},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
