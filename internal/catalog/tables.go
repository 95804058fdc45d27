package catalog

import "github.com/forgo/ascend/api/internal/model"

var exerciseTable = []ExerciseTemplate{
	{Name: "Flexiones", Base: 10, Max: 100, Unit: model.UnitReps, Stat: model.StatStrength},
	{Name: "Sentadillas", Base: 10, Max: 100, Unit: model.UnitReps, Stat: model.StatEndurance},
	{Name: "Abdominales", Base: 10, Max: 100, Unit: model.UnitReps, Stat: model.StatVitality},
	{Name: "Correr", Base: 1, Max: 10, Unit: model.UnitKilometers, Stat: model.StatAgility},
}

var dungeonTable = []Dungeon{
	// Rank E
	{ID: "dungeon_prueba_novato", Name: "Prueba del Novato", MinLevel: 1, Multiplier: 1.0, Difficulty: model.RankE, Exp: 30, Gold: 20,
		Description: "Tu primera prueba como cazador."},
	{ID: "dungeon_cueva_goblins", Name: "Cueva de los Goblins", MinLevel: 3, Multiplier: 1.2, Difficulty: model.RankE, Exp: 50, Gold: 30,
		Description: "Una cueva infestada de goblins débiles."},
	{ID: "dungeon_bosque_oscuro", Name: "Bosque Oscuro", MinLevel: 5, Multiplier: 1.3, Difficulty: model.RankE, Exp: 70, Gold: 40,
		Description: "Un bosque lleno de criaturas nocturnas."},

	// Rank D
	{ID: "dungeon_mina_abandonada", Name: "Mina Abandonada", MinLevel: 10, Multiplier: 1.5, Difficulty: model.RankD, Exp: 100, Gold: 60,
		Description: "Una mina donde habitan bestias subterráneas."},
	{ID: "dungeon_templo_serpiente", Name: "Templo de la Serpiente", MinLevel: 12, Multiplier: 1.6, Difficulty: model.RankD, Exp: 130, Gold: 80,
		Description: "Un antiguo templo custodiado por serpientes gigantes."},
	{ID: "dungeon_pantano_veneno", Name: "Pantano Venenoso", MinLevel: 15, Multiplier: 1.7, Difficulty: model.RankD, Exp: 160, Gold: 100,
		Description: "Un pantano tóxico con criaturas mutadas."},
	{ID: "dungeon_ruinas_antiguas", Name: "Ruinas Antiguas", MinLevel: 18, Multiplier: 1.8, Difficulty: model.RankD, Exp: 200, Gold: 120,
		Description: "Ruinas de una civilización perdida."},

	// Rank C
	{ID: "dungeon_fortaleza_hielo", Name: "Fortaleza de Hielo", MinLevel: 25, Multiplier: 2.0, Difficulty: model.RankC, Exp: 300, Gold: 180,
		Description: "Una fortaleza congelada con guerreros de hielo."},
	{ID: "dungeon_volcan_activo", Name: "Volcán Activo", MinLevel: 28, Multiplier: 2.2, Difficulty: model.RankC, Exp: 380, Gold: 220,
		Description: "El interior de un volcán con elementales de fuego."},
	{ID: "dungeon_cementerio_maldito", Name: "Cementerio Maldito", MinLevel: 32, Multiplier: 2.4, Difficulty: model.RankC, Exp: 450, Gold: 280,
		Description: "Un cementerio donde los muertos caminan."},
	{ID: "dungeon_laboratorio_demonios", Name: "Laboratorio de Demonios", MinLevel: 36, Multiplier: 2.6, Difficulty: model.RankC, Exp: 550, Gold: 350,
		Description: "Un laboratorio secreto con experimentos demoníacos."},

	// Rank B
	{ID: "dungeon_castillo_vampiro", Name: "Castillo del Vampiro", MinLevel: 40, Multiplier: 3.0, Difficulty: model.RankB, Exp: 700, Gold: 450,
		Description: "El castillo de un antiguo vampiro noble."},
	{ID: "dungeon_abismo_oscuridad", Name: "Abismo de la Oscuridad", MinLevel: 44, Multiplier: 3.3, Difficulty: model.RankB, Exp: 900, Gold: 550,
		Description: "Un abismo donde la luz no existe."},
	{ID: "dungeon_torre_demonio", Name: "Torre del Demonio", MinLevel: 48, Multiplier: 3.6, Difficulty: model.RankB, Exp: 1100, Gold: 700,
		Description: "Una torre custodiada por demonios menores."},
	{ID: "dungeon_dimension_caos", Name: "Dimensión del Caos", MinLevel: 52, Multiplier: 3.8, Difficulty: model.RankB, Exp: 1300, Gold: 850,
		Description: "Una grieta dimensional llena de criaturas caóticas."},

	// Rank A
	{ID: "dungeon_palacio_reyes", Name: "Palacio de los Reyes Caídos", MinLevel: 60, Multiplier: 4.0, Difficulty: model.RankA, Exp: 1800, Gold: 1100,
		Description: "El palacio de antiguos reyes demonios."},
	{ID: "dungeon_templo_gigantes", Name: "Templo de los Gigantes", MinLevel: 65, Multiplier: 4.5, Difficulty: model.RankA, Exp: 2200, Gold: 1400,
		Description: "Un templo construido por gigantes ancestrales."},
	{ID: "dungeon_santuario_dragon", Name: "Santuario del Dragón", MinLevel: 70, Multiplier: 5.0, Difficulty: model.RankA, Exp: 2800, Gold: 1800,
		Description: "El santuario de un dragón antiguo."},
	{ID: "dungeon_trono_sombras", Name: "Trono de las Sombras", MinLevel: 75, Multiplier: 5.5, Difficulty: model.RankA, Exp: 3500, Gold: 2200,
		Description: "Donde las sombras más poderosas residen."},

	// Rank S
	{ID: "dungeon_puerta_infierno", Name: "Puerta del Infierno", MinLevel: 80, Multiplier: 6.0, Difficulty: model.RankS, Exp: 5000, Gold: 3000,
		Description: "La entrada al inframundo mismo."},
	{ID: "dungeon_reino_demonios", Name: "Reino de los Demonios", MinLevel: 85, Multiplier: 7.0, Difficulty: model.RankS, Exp: 7000, Gold: 4500,
		Description: "El corazón del territorio demoníaco."},
	{ID: "dungeon_tumba_monarcas", Name: "Tumba de los Monarcas", MinLevel: 90, Multiplier: 8.0, Difficulty: model.RankS, Exp: 10000, Gold: 6000,
		Description: "Donde descansan los Monarcas caídos."},
	{ID: "dungeon_vacio_absoluto", Name: "Vacío Absoluto", MinLevel: 95, Multiplier: 10.0, Difficulty: model.RankS, Exp: 15000, Gold: 10000,
		Description: "El vacío entre dimensiones. Solo los más fuertes sobreviven."},
}

var bossTable = []Boss{
	{ID: "boss_igris", Name: "Igris, el Caballero de Sangre", MinLevel: 20, Multiplier: 4.0, Difficulty: model.RankC, Exp: 2000, Gold: 1200, Shadow: "shadow_igris",
		Description: "Un caballero leal que guarda su tumba por la eternidad."},
	{ID: "boss_tusk", Name: "Tusk, el Rey Orco", MinLevel: 30, Multiplier: 5.0, Difficulty: model.RankB, Exp: 4000, Gold: 2500, Shadow: "shadow_tusk",
		Description: "El rey de todos los orcos, temido por su brutalidad."},
	{ID: "boss_baran", Name: "Baran, el Rey Demonio", MinLevel: 50, Multiplier: 6.0, Difficulty: model.RankA, Exp: 8000, Gold: 5000, Shadow: "shadow_baran",
		Description: "Uno de los reyes demonio más poderosos."},
	{ID: "boss_ant_king", Name: "Rey de las Hormigas", MinLevel: 60, Multiplier: 7.0, Difficulty: model.RankA, Exp: 12000, Gold: 7500, Shadow: "shadow_beru",
		Description: "El temible rey de la isla Jeju."},
	{ID: "boss_legia", Name: "Legia, el Monarca de los Gigantes", MinLevel: 75, Multiplier: 8.0, Difficulty: model.RankS, Exp: 20000, Gold: 12000, Shadow: "shadow_legia",
		Description: "El Monarca que comanda a los gigantes."},
	{ID: "boss_querehsha", Name: "Querehsha, Monarca de la Plaga", MinLevel: 85, Multiplier: 9.0, Difficulty: model.RankS, Exp: 30000, Gold: 18000, Shadow: "shadow_querehsha",
		Description: "La Monarca de las enfermedades y la peste."},
	{ID: "boss_antares", Name: "Antares, Rey de los Dragones", MinLevel: 95, Multiplier: 12.0, Difficulty: model.RankS, Exp: 50000, Gold: 30000, Shadow: "shadow_antares",
		Description: "El más poderoso de todos los Monarcas."},
}

var missionTable = []Mission{
	{ID: "mission_despertar", Name: "El Despertar", MinLevel: 1, Exp: 200, Gold: 100,
		Requirement: Requirement{Type: RequirementStreak, Value: 3},
		Description: "Completa 3 misiones diarias consecutivas."},
	{ID: "mission_primer_paso", Name: "Primer Paso", MinLevel: 1, Exp: 150, Gold: 80,
		Requirement: Requirement{Type: RequirementLevel, Value: 5},
		Description: "Alcanza el nivel 5."},
	{ID: "mission_resistencia_basica", Name: "Resistencia Básica", MinLevel: 5, Exp: 180, Gold: 90,
		Requirement: Requirement{Type: RequirementDungeonRank, Rank: model.RankE},
		Description: "Completa una mazmorra E sin fallar."},
	{ID: "mission_cazador_real", Name: "Cazador de Verdad", MinLevel: 10, Exp: 400, Gold: 250, Shadow: "shadow_goblin",
		Requirement: Requirement{Type: RequirementRank, Rank: model.RankD},
		Description: "Alcanza el rango D."},
	{ID: "mission_semana_hierro", Name: "Semana de Hierro", MinLevel: 10, Exp: 600, Gold: 350,
		Requirement: Requirement{Type: RequirementStreak, Value: 7},
		Description: "Mantén una racha de 7 días."},
	{ID: "mission_dominador_d", Name: "Dominador de Rango D", MinLevel: 15, Exp: 800, Gold: 500,
		Requirement: Requirement{Type: RequirementDungeonCount, Value: 5, Rank: model.RankD},
		Description: "Completa 5 mazmorras de rango D."},
	{ID: "mission_fortaleza_mental", Name: "Fortaleza Mental", MinLevel: 20, Exp: 1000, Gold: 600, Shadow: "shadow_knight",
		Requirement: Requirement{Type: RequirementNoFailStreak, Value: 10},
		Description: "No falles ninguna misión en 10 días."},
	{ID: "mission_ascenso_c", Name: "Ascenso al Rango C", MinLevel: 25, Exp: 1500, Gold: 900, Shadow: "shadow_mage",
		Requirement: Requirement{Type: RequirementRank, Rank: model.RankC},
		Description: "Demuestra tu valía alcanzando el rango C."},
	{ID: "mission_mes_acero", Name: "Mes de Acero", MinLevel: 25, Exp: 3000, Gold: 1500, Shadow: "shadow_tank",
		Requirement: Requirement{Type: RequirementStreak, Value: 30},
		Description: "Racha de 30 días consecutivos."},
	{ID: "mission_conquistador_c", Name: "Conquistador de Rango C", MinLevel: 30, Exp: 2500, Gold: 1200,
		Requirement: Requirement{Type: RequirementDungeonCount, Value: 10, Rank: model.RankC},
		Description: "Completa 10 mazmorras de rango C."},
	{ID: "mission_mil_repeticiones", Name: "Mil Repeticiones", MinLevel: 35, Exp: 2000, Gold: 1000,
		Requirement: Requirement{Type: RequirementTotalReps, Value: 1000},
		Description: "Acumula 1000 repeticiones totales."},
	{ID: "mission_elite_b", Name: "Élite Rango B", MinLevel: 40, Exp: 4000, Gold: 2500, Shadow: "shadow_assassin",
		Requirement: Requirement{Type: RequirementRank, Rank: model.RankB},
		Description: "Alcanza el prestigioso rango B."},
	{ID: "mission_leyenda_100", Name: "Leyenda de los 100 Días", MinLevel: 40, Exp: 10000, Gold: 5000, Shadow: "shadow_general",
		Requirement: Requirement{Type: RequirementStreak, Value: 100},
		Description: "Racha de 100 días."},
	{ID: "mission_sung_jinwoo", Name: "Entrenamiento de Sung Jin-Woo", MinLevel: 50, Exp: 5000, Gold: 3000, Shadow: "shadow_beru",
		Requirement: Requirement{Type: RequirementLevel, Value: 50},
		Description: "Completa el entrenamiento completo: 100 flexiones, 100 sentadillas, 100 abdominales, 10km."},
	{ID: "mission_destructor_b", Name: "Destructor de Rango B", MinLevel: 50, Exp: 6000, Gold: 3500,
		Requirement: Requirement{Type: RequirementDungeonCount, Value: 15, Rank: model.RankB},
		Description: "Completa 15 mazmorras de rango B."},
	{ID: "mission_rango_a", Name: "Rango A - Los Elegidos", MinLevel: 60, Exp: 8000, Gold: 5000, Shadow: "shadow_dragon",
		Requirement: Requirement{Type: RequirementRank, Rank: model.RankA},
		Description: "Únete a la élite del rango A."},
	{ID: "mission_aniquilador_a", Name: "Aniquilador de Rango A", MinLevel: 70, Exp: 12000, Gold: 7000, Shadow: "shadow_demon_lord",
		Requirement: Requirement{Type: RequirementDungeonCount, Value: 20, Rank: model.RankA},
		Description: "Completa 20 mazmorras de rango A."},
	{ID: "mission_10k_reps", Name: "Diez Mil Repeticiones", MinLevel: 60, Exp: 8000, Gold: 4000,
		Requirement: Requirement{Type: RequirementTotalReps, Value: 10000},
		Description: "Acumula 10,000 repeticiones totales."},
	{ID: "mission_rango_s", Name: "Rango S - Monarca", MinLevel: 80, Exp: 20000, Gold: 12000, Shadow: "shadow_monarch",
		Requirement: Requirement{Type: RequirementRank, Rank: model.RankS},
		Description: "Alcanza el rango supremo S."},
	{ID: "mission_aniquilador_s", Name: "Conquistador de Rango S", MinLevel: 85, Exp: 30000, Gold: 20000, Shadow: "shadow_sovereign",
		Requirement: Requirement{Type: RequirementDungeonCount, Value: 10, Rank: model.RankS},
		Description: "Completa 10 mazmorras de rango S."},
	{ID: "mission_ano_acero", Name: "Año de Acero", MinLevel: 80, Exp: 50000, Gold: 30000, Shadow: "shadow_ashborn",
		Requirement: Requirement{Type: RequirementStreak, Value: 365},
		Description: "Racha de 365 días consecutivos."},
}

var shadowTable = []Shadow{
	{ID: "shadow_goblin", Name: "Goblin de Sombra", Rarity: RarityCommon, StatBonus: model.Stats{Strength: 2}},
	{ID: "shadow_knight", Name: "Caballero de Sombra", Rarity: RarityUncommon, StatBonus: model.Stats{Endurance: 5}},
	{ID: "shadow_mage", Name: "Mago de Sombra", Rarity: RarityUncommon, StatBonus: model.Stats{Vitality: 5}},
	{ID: "shadow_tank", Name: "Tanque de Sombra", Rarity: RarityRare, StatBonus: model.Stats{Endurance: 10}},
	{ID: "shadow_assassin", Name: "Asesino de Sombra", Rarity: RarityRare, StatBonus: model.Stats{Agility: 10}},
	{ID: "shadow_general", Name: "General de Sombra", Rarity: RarityEpic, StatBonus: model.Stats{Strength: 15}},
	{ID: "shadow_igris", Name: "Igris", Rarity: RarityEpic, StatBonus: model.Stats{Strength: 10, Endurance: 10}},
	{ID: "shadow_tusk", Name: "Tusk", Rarity: RarityEpic, StatBonus: model.Stats{Strength: 20}},
	{ID: "shadow_beru", Name: "Beru", Rarity: RarityLegendary, StatBonus: model.Stats{Strength: 15, Agility: 15}},
	{ID: "shadow_dragon", Name: "Dragón de Sombra", Rarity: RarityLegendary, StatBonus: model.Stats{Vitality: 25}},
	{ID: "shadow_baran", Name: "Baran", Rarity: RarityLegendary, StatBonus: model.Stats{Strength: 20, Vitality: 10}},
	{ID: "shadow_demon_lord", Name: "Señor Demonio", Rarity: RarityLegendary, StatBonus: model.Stats{Strength: 15, Endurance: 15}},
	{ID: "shadow_monarch", Name: "Sombra del Monarca", Rarity: RarityMythic, StatBonus: model.Stats{Strength: 25, Agility: 25}},
	{ID: "shadow_legia", Name: "Legia", Rarity: RarityMythic, StatBonus: model.Stats{Strength: 30, Endurance: 20}},
	{ID: "shadow_querehsha", Name: "Querehsha", Rarity: RarityMythic, StatBonus: model.Stats{Vitality: 40}},
	{ID: "shadow_sovereign", Name: "Soberano de Sombra", Rarity: RarityMythic, StatBonus: model.Stats{Strength: 30, Agility: 20, Vitality: 20}},
	{ID: "shadow_ashborn", Name: "Ashborn - Monarca de las Sombras", Rarity: RarityDivine, StatBonus: model.Stats{Strength: 50, Agility: 50}},
	{ID: "shadow_antares", Name: "Antares", Rarity: RarityDivine, StatBonus: model.Stats{Strength: 50, Endurance: 50, Vitality: 50}},
}

var punishmentTable = []PunishmentTemplate{
	{Name: "Castigo: Resistencia Extrema", Exp: 30, Exercises: []model.Exercise{{Name: "Burpees", Reps: 50, Unit: model.UnitReps}}},
	{Name: "Castigo: Fuerza Mental", Exp: 40, Exercises: []model.Exercise{{Name: "Plancha", Reps: 5, Unit: model.UnitMinutes}}},
	{Name: "Castigo: Velocidad", Exp: 35, Exercises: []model.Exercise{{Name: "Sprint", Reps: 10, Unit: model.UnitSprints}}},
	{Name: "Castigo: Core de Acero", Exp: 45, Exercises: []model.Exercise{{Name: "Plancha lateral", Reps: 3, Unit: model.UnitMinutesPerSide}}},
	{Name: "Castigo: Piernas de Hierro", Exp: 50, Exercises: []model.Exercise{{Name: "Sentadillas con salto", Reps: 100, Unit: model.UnitReps}}},
}

var shopTable = []ShopItem{
	{ID: "potion_exp_1", Name: "Poción de Experiencia", Price: 150, Type: ItemConsumable, Effect: Effect{Exp: 50},
		Description: "+50 EXP instantánea"},
	{ID: "potion_exp_2", Name: "Poción de Experiencia Mayor", Price: 500, Type: ItemConsumable, Effect: Effect{Exp: 200},
		Description: "+200 EXP instantánea"},
	{ID: "potion_exp_3", Name: "Elixir de Experiencia", Price: 2000, Type: ItemConsumable, Effect: Effect{Exp: 1000},
		Description: "+1000 EXP instantánea"},
	{ID: "title_shadow", Name: "Título: Monarca de las Sombras", Price: 10000, Type: ItemTitle, Effect: Effect{Title: "Monarca de las Sombras"},
		Description: "Un título legendario"},
	{ID: "title_hunter", Name: "Título: Cazador Élite", Price: 2000, Type: ItemTitle, Effect: Effect{Title: "Cazador Élite"},
		Description: "Demuestra tu valía"},
	{ID: "title_demon_slayer", Name: "Título: Exterminador de Demonios", Price: 5000, Type: ItemTitle, Effect: Effect{Title: "Exterminador de Demonios"},
		Description: "Terror de los demonios"},
	{ID: "title_sovereign", Name: "Título: Soberano", Price: 25000, Type: ItemTitle, Effect: Effect{Title: "Soberano"},
		Description: "El más alto honor"},
	{ID: "stat_str", Name: "Cristal de Fuerza", Price: 800, Type: ItemStatBoost, Effect: Effect{Stat: model.StatStrength, Value: 3},
		Description: "+3 Fuerza permanente"},
	{ID: "stat_end", Name: "Cristal de Resistencia", Price: 800, Type: ItemStatBoost, Effect: Effect{Stat: model.StatEndurance, Value: 3},
		Description: "+3 Resistencia permanente"},
	{ID: "stat_agi", Name: "Cristal de Agilidad", Price: 800, Type: ItemStatBoost, Effect: Effect{Stat: model.StatAgility, Value: 3},
		Description: "+3 Agilidad permanente"},
	{ID: "stat_vit", Name: "Cristal de Vitalidad", Price: 800, Type: ItemStatBoost, Effect: Effect{Stat: model.StatVitality, Value: 3},
		Description: "+3 Vitalidad permanente"},
	{ID: "streak_protect", Name: "Escudo de Racha", Price: 1500, Type: ItemConsumable, Effect: Effect{StreakShield: 1},
		Description: "Protege tu racha por 1 día si fallas"},
}

var achievementTable = []Achievement{
	{ID: "first_quest", Name: "Primer Paso", Description: "Completa tu primera misión", RewardGold: 50, Category: "quests"},
	{ID: "quests_10", Name: "Dedicación", Description: "Completa 10 misiones", RewardGold: 150, Category: "quests"},
	{ID: "quests_50", Name: "Imparable", Description: "Completa 50 misiones", RewardGold: 500, Category: "quests"},
	{ID: "quests_100", Name: "Centurión", Description: "Completa 100 misiones", RewardGold: 1000, Category: "quests"},
	{ID: "quests_500", Name: "Leyenda Viviente", Description: "Completa 500 misiones", RewardGold: 5000, Category: "quests"},
	{ID: "quests_1000", Name: "Mil Batallas", Description: "Completa 1000 misiones", RewardGold: 15000, Category: "quests"},

	{ID: "level_10", Name: "Despertar", Description: "Alcanza el nivel 10", RewardGold: 200, Category: "level"},
	{ID: "level_25", Name: "Cazador Rango C", Description: "Alcanza el nivel 25", RewardGold: 500, Category: "level"},
	{ID: "level_40", Name: "Élite Rango B", Description: "Alcanza el nivel 40", RewardGold: 1500, Category: "level"},
	{ID: "level_50", Name: "Entrenamiento Sung Jin-Woo", Description: "Alcanza el nivel 50 - Entrenamiento completo", RewardGold: 3000, Category: "level"},
	{ID: "level_60", Name: "Rango A", Description: "Alcanza el nivel 60", RewardGold: 5000, Category: "level"},
	{ID: "level_80", Name: "Rango S - Monarca", Description: "Alcanza el nivel 80", RewardGold: 10000, Category: "level"},
	{ID: "level_100", Name: "Más Allá del Límite", Description: "Alcanza el nivel 100", RewardGold: 25000, Category: "level"},

	{ID: "streak_3", Name: "Inicio Prometedor", Description: "Racha de 3 días", RewardGold: 100, Category: "streak"},
	{ID: "streak_7", Name: "Semana Perfecta", Description: "Racha de 7 días", RewardGold: 300, Category: "streak"},
	{ID: "streak_14", Name: "Quincena de Hierro", Description: "Racha de 14 días", RewardGold: 600, Category: "streak"},
	{ID: "streak_30", Name: "Mes de Acero", Description: "Racha de 30 días", RewardGold: 1500, Category: "streak"},
	{ID: "streak_60", Name: "Voluntad Inquebrantable", Description: "Racha de 60 días", RewardGold: 3000, Category: "streak"},
	{ID: "streak_100", Name: "Leyenda de los 100 Días", Description: "Racha de 100 días", RewardGold: 5000, Category: "streak"},
	{ID: "streak_365", Name: "Año de Fuego", Description: "Racha de 365 días", RewardGold: 30000, Category: "streak"},

	{ID: "dungeon_first", Name: "Primera Mazmorra", Description: "Completa tu primera mazmorra", RewardGold: 100, Category: "dungeon"},
	{ID: "dungeon_e_5", Name: "Cazador de Rango E", Description: "Completa 5 mazmorras E", RewardGold: 200, Category: "dungeon"},
	{ID: "dungeon_d_5", Name: "Cazador de Rango D", Description: "Completa 5 mazmorras D", RewardGold: 400, Category: "dungeon"},
	{ID: "dungeon_c_5", Name: "Cazador de Rango C", Description: "Completa 5 mazmorras C", RewardGold: 800, Category: "dungeon"},
	{ID: "dungeon_b_5", Name: "Cazador de Rango B", Description: "Completa 5 mazmorras B", RewardGold: 1500, Category: "dungeon"},
	{ID: "dungeon_a_5", Name: "Cazador de Rango A", Description: "Completa 5 mazmorras A", RewardGold: 3000, Category: "dungeon"},
	{ID: "dungeon_s", Name: "Conquistador S", Description: "Completa una mazmorra S", RewardGold: 5000, Category: "dungeon"},
	{ID: "dungeon_s_10", Name: "Maestro de Rango S", Description: "Completa 10 mazmorras S", RewardGold: 15000, Category: "dungeon"},

	{ID: "boss_first", Name: "Cazador de Jefes", Description: "Derrota a tu primer jefe", RewardGold: 500, Category: "boss"},
	{ID: "boss_igris", Name: "Victoria sobre Igris", Description: "Derrota a Igris", RewardGold: 1000, Category: "boss"},
	{ID: "boss_beru", Name: "Rey de las Hormigas Caído", Description: "Derrota al Rey de las Hormigas", RewardGold: 5000, Category: "boss"},
	{ID: "boss_antares", Name: "Matador de Dragones", Description: "Derrota a Antares", RewardGold: 25000, Category: "boss"},
	{ID: "boss_all", Name: "Aniquilador de Monarcas", Description: "Derrota a todos los jefes", RewardGold: 50000, Category: "boss"},

	{ID: "shadow_first", Name: "Necromante", Description: "Obtén tu primera sombra", RewardGold: 200, Category: "shadow"},
	{ID: "shadow_5", Name: "Comandante de Sombras", Description: "Obtén 5 sombras", RewardGold: 800, Category: "shadow"},
	{ID: "shadow_10", Name: "Señor de las Sombras", Description: "Obtén 10 sombras", RewardGold: 2000, Category: "shadow"},
	{ID: "shadow_legendary", Name: "Coleccionista Legendario", Description: "Obtén una sombra legendaria", RewardGold: 3000, Category: "shadow"},
	{ID: "shadow_mythic", Name: "Coleccionista Mítico", Description: "Obtén una sombra mítica", RewardGold: 8000, Category: "shadow"},
	{ID: "shadow_divine", Name: "Coleccionista Divino", Description: "Obtén una sombra divina", RewardGold: 20000, Category: "shadow"},

	{ID: "guild_join", Name: "Compañero", Description: "Únete a un gremio", RewardGold: 100, Category: "guild"},
	{ID: "guild_create", Name: "Líder", Description: "Crea un gremio", RewardGold: 300, Category: "guild"},

	{ID: "stats_50", Name: "Cuerpo Fortalecido", Description: "Una estadística alcanza 50", RewardGold: 500, Category: "stats"},
	{ID: "stats_100", Name: "Cuerpo de Acero", Description: "Una estadística alcanza 100", RewardGold: 2000, Category: "stats"},
	{ID: "stats_all_50", Name: "Equilibrio Perfecto", Description: "Todas las estadísticas en 50+", RewardGold: 3000, Category: "stats"},

	{ID: "reps_1000", Name: "Mil Movimientos", Description: "1,000 repeticiones totales", RewardGold: 300, Category: "reps"},
	{ID: "reps_10000", Name: "Diez Mil Movimientos", Description: "10,000 repeticiones totales", RewardGold: 1500, Category: "reps"},
	{ID: "reps_100000", Name: "Cien Mil Movimientos", Description: "100,000 repeticiones totales", RewardGold: 10000, Category: "reps"},
}
