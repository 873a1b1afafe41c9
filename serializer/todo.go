package serializer

import "github.com/tarkangur/task-project/models"

type TodoOut struct {
	UserID    uint   `json:"userId"`
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type TodoIn struct {
	Title     string `json:"title" binding:"required,max=150"`
	Completed bool   `json:"completed"`
}

func TodoToExternal(t models.Todo) TodoOut {
	return TodoOut{UserID: t.UserID, ID: t.ID, Title: t.Title, Completed: t.Completed}
}

func TodoApply(t *models.Todo, in TodoIn) {
	t.Title = in.Title
	t.Completed = in.Completed
}
