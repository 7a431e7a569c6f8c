package catalog

// Add new learning pages to builtinPages; categories only change with the CategoryID enum.

var builtinCategories = []Category{
	{
		ID:          CategoryUIBasics,
		Label:       "UI Basics",
		Description: "Fundamental UI elements such as buttons, forms and text inputs.",
	},
	{
		ID:          CategoryLayout,
		Label:       "Layout",
		Description: "Layout techniques including Flexbox, Grid and responsive design.",
	},
	{
		ID:          CategoryAnimation,
		Label:       "Animation",
		Description: "CSS animations, transitions and motion.",
	},
	{
		ID:          CategoryReactHooks,
		Label:       "React Hooks",
		Description: "The core hooks such as useState and useEffect.",
	},
	{
		ID:          CategoryNextFeatures,
		Label:       "Next.js Features",
		Description: "App Router, Server Components and other Next.js specific features.",
	},
}

var builtinPages = []Page{
	{
		ID:          "hello-world",
		Title:       "Hello World",
		Description: "The most basic sample page. Displays Hello World.",
		Category:    CategoryUIBasics,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"React", "Basics"},
	},
	{
		ID:          "button-basics",
		Title:       "Button Basics",
		Description: "Implement buttons in different styles and learn how to express them with Tailwind CSS.",
		Category:    CategoryUIBasics,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"Button", "Tailwind CSS"},
	},
	{
		ID:          "form-input",
		Title:       "Form Input",
		Description: "Form elements such as text inputs, checkboxes and select boxes.",
		Category:    CategoryUIBasics,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"Form", "Input", "Tailwind CSS"},
	},
	{
		ID:          "flexbox-layout",
		Title:       "Flexbox Layout",
		Description: "Flexible, responsive layout design with Flexbox.",
		Category:    CategoryLayout,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"Flexbox", "Tailwind CSS", "Responsive"},
	},
	{
		ID:          "grid-layout",
		Title:       "Grid Layout",
		Description: "Advanced layouts built with CSS Grid.",
		Category:    CategoryLayout,
		Difficulty:  DifficultyIntermediate,
		Tags:        []string{"Grid", "Tailwind CSS"},
	},
	{
		ID:          "fade-transition",
		Title:       "Fade Transition",
		Description: "Fade-in and fade-out effects using CSS transitions.",
		Category:    CategoryAnimation,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"CSS Transition", "Tailwind CSS"},
	},
	{
		ID:          "use-state-counter",
		Title:       "useState Counter",
		Description: "A simple counter built with the useState hook.",
		Category:    CategoryReactHooks,
		Difficulty:  DifficultyBeginner,
		Tags:        []string{"useState", "React"},
	},
	{
		ID:          "use-effect-lifecycle",
		Title:       "useEffect Lifecycle",
		Description: "Managing component lifecycle with the useEffect hook.",
		Category:    CategoryReactHooks,
		Difficulty:  DifficultyIntermediate,
		Tags:        []string{"useEffect", "React"},
	},
	{
		ID:          "server-components",
		Title:       "Server Components",
		Description: "How to use Server Components in the Next.js App Router, and why.",
		Category:    CategoryNextFeatures,
		Difficulty:  DifficultyIntermediate,
		Tags:        []string{"Server Components", "Next.js"},
	},
	{
		ID:          "custom-hooks",
		Title:       "Custom Hooks",
		Description: "Building reusable custom hooks such as useLocalStorage and useDebounce.",
		Category:    CategoryReactHooks,
		Difficulty:  DifficultyIntermediate,
		Tags:        []string{"Custom Hooks", "React", "Reuse"},
	},
	{
		ID:          "server-actions",
		Title:       "Server Actions",
		Description: "Patterns for Server Actions that tie form submission to server-side processing.",
		Category:    CategoryNextFeatures,
		Difficulty:  DifficultyIntermediate,
		Tags:        []string{"Server Actions", "Form", "Next.js"},
	},
	{
		ID:          "suspense-loading",
		Title:       "Suspense and Loading",
		Description: "Managing loading states of async components with React Suspense.",
		Category:    CategoryNextFeatures,
		Difficulty:  DifficultyAdvanced,
		Tags:        []string{"Suspense", "Loading", "Streaming"},
	},
	{
		ID:          "compound-components",
		Title:       "Compound Components",
		Description: "Flexible, reusable UI design with the compound component pattern.",
		Category:    CategoryReactHooks,
		Difficulty:  DifficultyAdvanced,
		Tags:        []string{"Design Patterns", "Context", "Component Design"},
	},
}
