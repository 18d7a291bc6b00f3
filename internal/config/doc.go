// Package config provides configuration parsing for typewriter.
//
// The configuration is stored in typewriter.json. This package handles
// loading, saving and validating it, and resolves the timing of each
// configured line.
//
// # Configuration File Structure
//
//	{
//	  "title": "terminal",
//	  "wallpaper": "bg.png",
//	  "typing": { "duration": 0.05, "delay": 1 },
//	  "gap": 0.5,
//	  "style": { "font-family": "monospace", "color": "#33ff33" },
//	  "lines": [
//	    { "text": "$ whoami" },
//	    { "text": "guest", "tag": "pre", "duration": 0.02, "pause": 1 }
//	  ],
//	  "render": { "pretty": true },
//	  "output": "dist/index.html"
//	}
//
// Lines are typed one after another: a line starts when the previous one
// has finished, plus gap and the line's own pause.
package config
