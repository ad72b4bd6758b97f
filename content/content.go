package content

// Skill is one card of the skills grid.
type Skill struct {
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// Project is one card of the portfolio section.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image"`
	Tags        []string `yaml:"tags" json:"tags"`
	Link        string   `yaml:"link" json:"link"`
}

// Experience is one entry of the about timeline.
type Experience struct {
	Years       string `yaml:"years" json:"years"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// ContactItem is one line of the contact details list.
type ContactItem struct {
	Icon string `yaml:"icon" json:"icon"`
	Text string `yaml:"text" json:"text"`
}

// Social is a profile link shown under the about text.
type Social struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Site is all the static copy of the page.
type Site struct {
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description" json:"description"`
	Name        string        `yaml:"name" json:"name"`
	Tagline     string        `yaml:"tagline" json:"tagline"`
	Avatar      string        `yaml:"avatar" json:"avatar"`
	About       []string      `yaml:"about" json:"about"`
	Socials     []Social      `yaml:"socials" json:"socials"`
	Experience  []Experience  `yaml:"experience" json:"experience"`
	Skills      []Skill       `yaml:"skills" json:"skills"`
	Projects    []Project     `yaml:"projects" json:"projects"`
	ContactText string        `yaml:"contact_text" json:"contact_text"`
	Contact     []ContactItem `yaml:"contact" json:"contact"`
	Footer      string        `yaml:"footer" json:"footer"`
}

const placeholderImage = "/static/images/placeholder.svg"

// Default returns the built-in copy.
func Default() Site {
	return Site{
		Title:       "WildDev",
		Description: "Created by WildDev",
		Name:        "Wildsme",
		Tagline:     "Web Developer passionate about creating amazing web experiences",
		Avatar:      "/static/images/profile.svg",
		About: []string{
			`I'm a passionate web developer with over 5 years of experience building impactful digital
			solutions. I enjoy transforming complex challenges into clean, intuitive, and elegant designs.`,
			`When I'm not coding, I enjoy diving into new tech, contributing to open-source projects,
			and occasionally relaxing with some games.`,
		},
		Socials: []Social{
			{Name: "GitHub", URL: "#"},
			{Name: "LinkedIn", URL: "#"},
			{Name: "Twitter", URL: "#"},
		},
		Experience: []Experience{
			{
				Years:       "2023 - Present",
				Title:       "Full Stack Web Developer",
				Description: "Driving end-to-end development of scalable web solutions, ensuring performance and code quality, while actively learning and adopting new technologies.",
			},
			{
				Years:       "2022 - 2023",
				Title:       "Frontend and Backend Developer",
				Description: "Developed responsive web applications with React and Vue.js, supported by scalable backend systems using Flask (Python), Django, and Node.js for RESTful APIs and data management.",
			},
			{
				Years:       "2020 - 2022",
				Title:       "Junior Developer",
				Description: "Began my web development journey by mastering core concepts, exploring modern frameworks, and applying best practices in real-world projects.",
			},
		},
		Skills: []Skill{
			{Name: "Web Development", Icon: "🎨", Description: "HTML, CSS, JavaScript, Python"},
			{Name: "React Development", Icon: "⚙️", Description: "React, Redux, Hooks"},
			{Name: "Next.js Development", Icon: "📱", Description: "Next.js, Tailwind CSS"},
			{Name: "Backend Development", Icon: "✨", Description: "Node.js, Django"},
			{Name: "Database", Icon: "🗄️", Description: "MongoDB, PostgreSQL"},
			{Name: "Cloud Services", Icon: "☁️", Description: "AWS, Google Cloud"},
		},
		Projects: []Project{
			{
				Title:       "Personal Portfolio",
				Description: "A personal portfolio website built with Next.js and Tailwind CSS.",
				Image:       placeholderImage,
				Tags:        []string{"Next.js", "Tailwind CSS", "React"},
				Link:        "#",
			},
			{
				Title:       "E-commerce Website",
				Description: "An e-commerce website built with React and Redux.",
				Image:       placeholderImage,
				Tags:        []string{"React", "Redux", "Node.js"},
				Link:        "#",
			},
			{
				Title:       "AI-Chatbot",
				Description: "A chatbot application built with Python, enabling real-time conversations and smart responses.",
				Image:       placeholderImage,
				Tags:        []string{"Python", "Chatbot", "AI"},
				Link:        "#",
			},
			{
				Title:       "Blog Website",
				Description: "A blog website built with Next.js and Markdown.",
				Image:       placeholderImage,
				Tags:        []string{"Next.js", "Markdown", "React"},
				Link:        "#",
			},
		},
		ContactText: `I'm always interested in new opportunities and exciting projects. Let's discuss how
		we can bring your ideas to life.`,
		Contact: []ContactItem{
			{Icon: "mail", Text: "wildscomp@gmail.com"},
			{Icon: "phone", Text: "+62 851-3726-0621"},
			{Icon: "map-pin", Text: "Jakarta, Indonesia"},
		},
		Footer: "© 2024 WildsXD. All rights reserved.",
	}
}
