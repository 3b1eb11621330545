package domain

// Difficulty levels accepted by the exercise catalog.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise is a catalog entry. Standard exercises ship with the app;
// user-created ones carry the author's id.
type Exercise struct {
	ID              string  `json:"exercise_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Instructions    string  `json:"instructions,omitempty"`
	Difficulty      string  `json:"difficulty"`
	IsStandard      bool    `json:"is_standard"`
	CreatedByUserID *string `json:"created_by_user_id,omitempty"`
	VideoURL        string  `json:"video_url,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
}

// MuscleGroup is a node of the catalog taxonomy.
type MuscleGroup struct {
	ID          string `json:"muscle_group_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BodyRegion  string `json:"body_region"`
}

// ExerciseMuscleGroup links an exercise to a muscle group it trains.
type ExerciseMuscleGroup struct {
	MuscleGroup
	IsPrimary bool `json:"is_primary"`
}

// ExerciseKnowledge is supplementary coaching content for an exercise.
type ExerciseKnowledge struct {
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

// ExerciseDetail is the fully joined catalog view served to clients.
type ExerciseDetail struct {
	Exercise
	MuscleGroups []ExerciseMuscleGroup `json:"muscle_groups"`
	Knowledge    *ExerciseKnowledge    `json:"knowledge,omitempty"`
}

// MuscleGroupRegion groups the taxonomy by body region for the catalog index.
type MuscleGroupRegion struct {
	Region       string        `json:"region"`
	MuscleGroups []MuscleGroup `json:"muscle_groups"`
}
