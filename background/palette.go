package background

// Colors follow the page palette: blue-400/500/600 and purple-400/500/600.

func particleColor(v Variant, dark bool) string {
	switch {
	case v == VariantGlow && dark:
		return "linear-gradient(to right, rgba(96, 165, 250, 0.4), rgba(192, 132, 252, 0.4))"
	case v == VariantGlow:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.2), rgba(168, 85, 247, 0.2))"
	case dark:
		return "linear-gradient(to right, rgba(96, 165, 250, 0.2), rgba(192, 132, 252, 0.2))"
	default:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.1), rgba(168, 85, 247, 0.1))"
	}
}

func borderColor(dark, hot bool) string {
	switch {
	case hot && dark:
		return "rgba(59, 130, 246, 0.6)"
	case hot:
		return "rgba(59, 130, 246, 0.4)"
	case dark:
		return "rgba(59, 130, 246, 0.3)"
	default:
		return "rgba(59, 130, 246, 0.2)"
	}
}

func lineColor(dark bool) string {
	if dark {
		return "rgba(59, 130, 246, 0.15)"
	}
	return "rgba(59, 130, 246, 0.08)"
}

func glowLineColor(dark, hot bool) string {
	switch {
	case hot && dark:
		return "rgba(59, 130, 246, 0.6)"
	case hot:
		return "rgba(59, 130, 246, 0.4)"
	case dark:
		return "rgba(59, 130, 246, 0.3)"
	default:
		return "rgba(59, 130, 246, 0.15)"
	}
}

func orbGradient(dark, hot bool) string {
	switch {
	case hot && dark:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.2), rgba(147, 51, 234, 0.2))"
	case hot:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.15), rgba(147, 51, 234, 0.15))"
	case dark:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.1), rgba(147, 51, 234, 0.1))"
	default:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.08), rgba(147, 51, 234, 0.08))"
	}
}

func starColor(dark, hot bool) string {
	switch {
	case hot && dark:
		return "linear-gradient(to right, rgba(59, 130, 246, 1), transparent)"
	case hot, dark:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.8), transparent)"
	default:
		return "linear-gradient(to right, rgba(59, 130, 246, 0.6), transparent)"
	}
}

func overlayColor(dark bool) string {
	if dark {
		return "rgb(147, 197, 253)"
	}
	return "rgb(37, 99, 235)"
}
