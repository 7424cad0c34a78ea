package main

import (
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/config"
	dbpkg "github.com/gimnasioapp/gym-api/internal/db"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	log.Println("Poblando la base de datos...")

	seedMemberships(db)
	seedTrainers(db)
	seedClasses(db)
	seedMembers(db)
	seedPayments(db)
	seedAttendance(db)
	seedEnrollments(db)
	seedEquipment(db)
	seedUsers(db)
	seedTemplates(db)

	log.Println("Base de datos poblada.")
	log.Println("Acceso: admin@gimnasio.com / admin123")
}

func seedMemberships(db *gorm.DB) {
	memberships := []models.Membership{
		{Tipo: "Básica", Descripcion: "Acceso al gimnasio y área de pesas. Incluye uso de vestidores y duchas.", PrecioMensual: 599, DuracionMeses: 1},
		{Tipo: "Premium", Descripcion: "Acceso completo al gimnasio, clases grupales y área de cardio.", PrecioMensual: 899, DuracionMeses: 1},
		{Tipo: "VIP", Descripcion: "Acceso completo + entrenamientos personales + nutricionista.", PrecioMensual: 1299, DuracionMeses: 1},
		{Tipo: "Anual Básica", Descripcion: "Membresía básica con descuento por pago anual.", PrecioMensual: 499, DuracionMeses: 12},
		{Tipo: "Anual Premium", Descripcion: "Membresía premium con descuento por pago anual.", PrecioMensual: 749, DuracionMeses: 12},
	}
	for _, m := range memberships {
		db.Where(models.Membership{Tipo: m.Tipo}).FirstOrCreate(&m)
	}
	log.Printf("Membresías: %d", len(memberships))
}

func seedTrainers(db *gorm.DB) {
	trainers := []models.Trainer{
		{Nombre: "Carlos Mendoza", Especialidad: "CrossFit", Telefono: "555-0101", Correo: "carlos.mendoza@gimnasio.com"},
		{Nombre: "Ana Ruiz", Especialidad: "Yoga", Telefono: "555-0102", Correo: "ana.ruiz@gimnasio.com"},
		{Nombre: "Luis García", Especialidad: "Spinning", Telefono: "555-0103", Correo: "luis.garcia@gimnasio.com"},
		{Nombre: "María López", Especialidad: "Pilates", Telefono: "555-0104", Correo: "maria.lopez@gimnasio.com"},
		{Nombre: "Roberto Silva", Especialidad: "Funcional", Telefono: "555-0105", Correo: "roberto.silva@gimnasio.com"},
		{Nombre: "Carmen Torres", Especialidad: "Zumba", Telefono: "555-0106", Correo: "carmen.torres@gimnasio.com"},
		{Nombre: "Diego Morales", Especialidad: "Natación", Telefono: "555-0107", Correo: "diego.morales@gimnasio.com"},
		{Nombre: "Patricia Vega", Especialidad: "Aeróbicos", Telefono: "555-0108", Correo: "patricia.vega@gimnasio.com"},
	}
	for _, t := range trainers {
		db.Where(models.Trainer{Correo: t.Correo}).FirstOrCreate(&t)
	}
	log.Printf("Entrenadores: %d", len(trainers))
}

func seedClasses(db *gorm.DB) {
	var trainers []models.Trainer
	db.Find(&trainers)
	if len(trainers) == 0 {
		log.Println("Sin entrenadores: clases omitidas")
		return
	}

	classes := []struct {
		Nombre       string
		CapacidadMax int
		Hora         int
	}{
		{"CrossFit Matutino", 15, 6},
		{"Yoga Relajante", 20, 7},
		{"Spinning Intenso", 25, 8},
		{"Pilates Core", 18, 9},
		{"Funcional HIIT", 20, 10},
		{"Zumba Fitness", 30, 17},
		{"Natación Libre", 12, 18},
		{"Aeróbicos Vespertino", 25, 19},
		{"CrossFit Nocturno", 15, 20},
		{"Yoga Nocturno", 20, 21},
	}

	base := time.Now().Truncate(24 * time.Hour)
	for day := 0; day < 30; day++ {
		for _, c := range classes {
			horario := base.AddDate(0, 0, day).Add(time.Duration(c.Hora) * time.Hour)
			trainer := trainers[rand.Intn(len(trainers))]

			class := models.ClassSession{
				Nombre:       c.Nombre,
				EntrenadorID: trainer.ID,
				Horario:      horario,
				CapacidadMax: c.CapacidadMax,
			}
			db.Where(models.ClassSession{Nombre: c.Nombre, Horario: horario}).FirstOrCreate(&class)
		}
	}
	log.Println("Clases: 30 días")
}

func seedMembers(db *gorm.DB) {
	var memberships []models.Membership
	db.Find(&memberships)
	if len(memberships) == 0 {
		log.Println("Sin membresías: socios omitidos")
		return
	}

	members := []models.Member{
		{Nombre: "Juan Pérez", Telefono: "555-1001", Correo: "juan.perez@email.com"},
		{Nombre: "María García", Telefono: "555-1002", Correo: "maria.garcia@email.com"},
		{Nombre: "Carlos Ruiz", Telefono: "555-1003", Correo: "carlos.ruiz@email.com"},
		{Nombre: "Ana López", Telefono: "555-1004", Correo: "ana.lopez@email.com"},
		{Nombre: "Luis Martín", Telefono: "555-1005", Correo: "luis.martin@email.com"},
		{Nombre: "Carmen Sánchez", Telefono: "555-1006", Correo: "carmen.sanchez@email.com"},
		{Nombre: "Roberto Torres", Telefono: "555-1007", Correo: "roberto.torres@email.com"},
		{Nombre: "Patricia Morales", Telefono: "555-1008", Correo: "patricia.morales@email.com"},
		{Nombre: "Diego Vega", Telefono: "555-1009", Correo: "diego.vega@email.com"},
		{Nombre: "Laura Silva", Telefono: "555-1010", Correo: "laura.silva@email.com"},
		{Nombre: "Fernando Castro", Telefono: "555-1011", Correo: "fernando.castro@email.com"},
		{Nombre: "Sofía Herrera", Telefono: "555-1012", Correo: "sofia.herrera@email.com"},
		{Nombre: "Andrés Jiménez", Telefono: "555-1013", Correo: "andres.jimenez@email.com"},
		{Nombre: "Valeria Romero", Telefono: "555-1014", Correo: "valeria.romero@email.com"},
		{Nombre: "Javier Mendoza", Telefono: "555-1015", Correo: "javier.mendoza@email.com"},
		{Nombre: "Gabriela Flores", Telefono: "555-1016", Correo: "gabriela.flores@email.com"},
		{Nombre: "Ricardo Vargas", Telefono: "555-1017", Correo: "ricardo.vargas@email.com"},
		{Nombre: "Mónica Reyes", Telefono: "555-1018", Correo: "monica.reyes@email.com"},
		{Nombre: "Alejandro Cruz", Telefono: "555-1019", Correo: "alejandro.cruz@email.com"},
		{Nombre: "Isabella Ramírez", Telefono: "555-1020", Correo: "isabella.ramirez@email.com"},
	}
	for _, m := range members {
		m.MembresiaID = memberships[rand.Intn(len(memberships))].ID
		m.FechaRegistro = time.Now().AddDate(0, 0, -rand.Intn(180)-1)
		db.Where(models.Member{Correo: m.Correo}).FirstOrCreate(&m)
	}
	log.Printf("Socios: %d", len(members))
}

func seedPayments(db *gorm.DB) {
	var members []models.Member
	db.Preload("Membresia").Find(&members)

	methods := []string{models.PaymentCash, models.PaymentCard, models.PaymentTransfer}

	for _, m := range members {
		var count int64
		db.Model(&models.Payment{}).Where("socio_id = ?", m.ID).Count(&count)
		if count > 0 {
			continue
		}

		for i := 0; i < rand.Intn(3)+1; i++ {
			payment := models.Payment{
				SocioID:   m.ID,
				Monto:     m.Membresia.PrecioMensual + float64(rand.Intn(100)-50),
				FechaPago: time.Now().AddDate(0, 0, -rand.Intn(90)-1),
				Metodo:    methods[rand.Intn(len(methods))],
			}
			db.Create(&payment)
		}
	}
	log.Println("Pagos creados")
}

func seedAttendance(db *gorm.DB) {
	var members []models.Member
	db.Find(&members)
	if len(members) == 0 {
		return
	}

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	if count > 0 {
		return
	}

	for day := 0; day < 30; day++ {
		date := time.Now().AddDate(0, 0, -day).Truncate(24 * time.Hour)

		for i := 0; i < rand.Intn(11)+5 && i < len(members); i++ {
			entrada := date.Add(time.Duration(rand.Intn(17)+6) * time.Hour)
			attendance := models.Attendance{
				SocioID:      members[i].ID,
				FechaEntrada: entrada,
			}
			if rand.Float64() < 0.9 {
				salida := entrada.Add(time.Duration(rand.Intn(136)+45) * time.Minute)
				attendance.FechaSalida = &salida
			}
			db.Create(&attendance)
		}
	}
	log.Println("Asistencias: 30 días")
}

func seedEnrollments(db *gorm.DB) {
	var members []models.Member
	db.Find(&members)

	var classes []models.ClassSession
	db.Where("horario >= ?", time.Now()).Find(&classes)
	if len(members) == 0 || len(classes) == 0 {
		return
	}

	for _, m := range members {
		for i := 0; i < rand.Intn(5)+1 && i < len(classes); i++ {
			class := classes[rand.Intn(len(classes))]

			var enrolled int64
			db.Model(&models.Enrollment{}).Where("clase_id = ?", class.ID).Count(&enrolled)
			if enrolled >= int64(class.CapacidadMax) {
				continue
			}

			enrollment := models.Enrollment{SocioID: m.ID, ClaseID: class.ID}
			db.Where(models.Enrollment{SocioID: m.ID, ClaseID: class.ID}).FirstOrCreate(&enrollment)
		}
	}
	log.Println("Inscripciones creadas")
}

func seedEquipment(db *gorm.DB) {
	equipment := []models.Equipment{
		{Nombre: "Cinta de Correr TechnoGym", Descripcion: "Cinta de correr profesional con pantalla táctil y programas predefinidos", Estado: models.EquipmentAvailable},
		{Nombre: "Bicicleta Estática Spinning", Descripcion: "Bicicleta de spinning con resistencia magnética y monitor de frecuencia cardíaca", Estado: models.EquipmentAvailable},
		{Nombre: "Máquina de Remo Concept2", Descripcion: "Máquina de remo profesional con monitor PM5", Estado: models.EquipmentAvailable},
		{Nombre: "Banco de Pesas Ajustable", Descripcion: "Banco ajustable para ejercicios con mancuernas y barras", Estado: models.EquipmentAvailable},
		{Nombre: "Rack de Sentadillas", Descripcion: "Rack profesional para sentadillas y press de banca", Estado: models.EquipmentAvailable},
		{Nombre: "Máquina Elíptica", Descripcion: "Elíptica con resistencia variable y programas de entrenamiento", Estado: models.EquipmentMaintenance},
		{Nombre: "Set de Mancuernas", Descripcion: "Juego completo de mancuernas de 5kg a 50kg", Estado: models.EquipmentAvailable},
		{Nombre: "Máquina de Poleas", Descripcion: "Sistema de poleas para ejercicios de tracción y empuje", Estado: models.EquipmentAvailable},
		{Nombre: "Prensa de Piernas", Descripcion: "Máquina de prensa inclinada para entrenamiento de piernas", Estado: models.EquipmentRepair},
		{Nombre: "Barras Olímpicas", Descripcion: "Set de barras olímpicas de 20kg para levantamiento de pesas", Estado: models.EquipmentAvailable},
	}
	for _, e := range equipment {
		e.FechaAdquisicion = time.Now().AddDate(0, 0, -rand.Intn(700)-30)
		if rand.Float64() < 0.7 {
			mantenimiento := e.FechaAdquisicion.AddDate(0, 0, rand.Intn(335)+30)
			e.UltimaMantenimiento = &mantenimiento
		}
		db.Where(models.Equipment{Nombre: e.Nombre}).FirstOrCreate(&e)
	}
	log.Printf("Equipos: %d", len(equipment))
}

func seedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	users := []models.User{
		{Email: "admin@gimnasio.com", FirstName: "Administrador", LastName: "Sistema", IsStaff: true, IsSuperuser: true},
		{Email: "recepcion@gimnasio.com", FirstName: "Personal", LastName: "Recepción", IsStaff: true},
		{Email: "gerente@gimnasio.com", FirstName: "Gerente", LastName: "General", IsStaff: true},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.IsActive = true
		db.Where(models.User{Email: u.Email}).FirstOrCreate(&u)
	}
	log.Printf("Usuarios: %d", len(users))
}

func seedTemplates(db *gorm.DB) {
	templates := []models.NotificationTemplate{
		{
			Name:             "Vencimiento de membresía",
			TriggerType:      string(domain.TriggerMembershipExpiry),
			TitleTemplate:    "Tu membresía está por vencer",
			MessageTemplate:  "Hola {nombre}, tu membresía {membresia} vence el {fecha}. Renuévala para seguir entrenando.",
			NotificationType: string(domain.TypeWarning),
			Category:         string(domain.CategoryMemberships),
			Priority:         string(domain.PriorityHigh),
			IsActive:         true,
		},
		{
			Name:             "Pago pendiente",
			TriggerType:      string(domain.TriggerPaymentDue),
			TitleTemplate:    "Recordatorio de pago",
			MessageTemplate:  "Hola {nombre}, no registramos pagos recientes. Acércate a recepción para regularizar tu cuota.",
			NotificationType: string(domain.TypeWarning),
			Category:         string(domain.CategoryPayments),
			Priority:         string(domain.PriorityHigh),
			IsActive:         true,
		},
		{
			Name:             "Recordatorio de clase",
			TriggerType:      string(domain.TriggerClassReminder),
			TitleTemplate:    "Tu clase se acerca",
			MessageTemplate:  "Hola {nombre}, tu clase {clase} comienza el {fecha}. ¡No faltes!",
			NotificationType: string(domain.TypeInfo),
			Category:         string(domain.CategoryClasses),
			Priority:         string(domain.PriorityMedium),
			IsActive:         true,
		},
		{
			Name:             "Equipo en mantenimiento",
			TriggerType:      string(domain.TriggerEquipmentMaintenance),
			TitleTemplate:    "Equipo fuera de servicio",
			MessageTemplate:  "El equipo {equipo} está en estado {estado}.",
			NotificationType: string(domain.TypeInfo),
			Category:         string(domain.CategoryEquipment),
			Priority:         string(domain.PriorityLow),
			IsActive:         true,
		},
		{
			Name:             "Baja asistencia",
			TriggerType:      string(domain.TriggerLowAttendance),
			TitleTemplate:    "Te extrañamos en el gimnasio",
			MessageTemplate:  "Hola {nombre}, hace tiempo que no te vemos. ¡Vuelve a entrenar con nosotros!",
			NotificationType: string(domain.TypeInfo),
			Category:         string(domain.CategoryReminders),
			Priority:         string(domain.PriorityMedium),
			IsActive:         true,
		},
		{
			Name:             "Bienvenida",
			TriggerType:      string(domain.TriggerNewMember),
			TitleTemplate:    "¡Bienvenido al gimnasio!",
			MessageTemplate:  "Hola {nombre}, gracias por unirte. Esperamos que disfrutes tu membresía {membresia}.",
			NotificationType: string(domain.TypeSuccess),
			Category:         string(domain.CategorySystem),
			Priority:         string(domain.PriorityMedium),
			IsActive:         true,
		},
	}
	for _, t := range templates {
		db.Where(models.NotificationTemplate{TriggerType: t.TriggerType}).FirstOrCreate(&t)
	}
	log.Printf("Plantillas: %d", len(templates))
}
